package account

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/repository"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type TokenResolver interface {
	ResolveToken(ctx context.Context, userID string) (string, error)
}

type Service struct {
	metaAccountRepository repository.MetaAccountRepository
}

func NewService(metaAccountRepository repository.MetaAccountRepository) TokenResolver {
	return &Service{
		metaAccountRepository: metaAccountRepository,
	}
}

// ResolveToken devolve o token de longa duração armazenado para o usuário,
// sem validar a expiração. Falhas sempre são *TokenError.
func (s *Service) ResolveToken(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", NewUserIDRequiredError()
	}

	account, err := s.metaAccountRepository.GetByUserID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar token do Meta")
		return "", NewTokenStorageError(err)
	}

	if account == nil {
		return "", NewNotConnectedError()
	}

	return account.AccessToken, nil
}
