package authenticating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/meta-backoffice-api/internal/config"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/meta-backoffice-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	IsAdmin(email string) bool
}

type Service struct {
	userRepo  repository.UserRepository
	allowlist *AdminAllowlist
	cfg       *config.Config
}

func NewService(userRepo repository.UserRepository, allowlist *AdminAllowlist, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:  userRepo,
		allowlist: allowlist,
		cfg:       cfg,
	}
}

func (s *Service) IsAdmin(email string) bool {
	return s.allowlist.IsAdmin(email)
}

// LoginUser emite uma sessão apenas para administradores da allowlist com senha válida
func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = normalizeEmail(email)

	if !s.allowlist.IsAdmin(email) {
		logrus.WithField("email", email).Warn("Tentativa de login fora da allowlist de administradores")
		return "", NewUserAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, email, "Usuário sem acesso ao backoffice")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil || user.PasswordHash == "" {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "Email ou senha incorretos")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar token JWT")
		return "", NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, "Tente novamente")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	tokenID, err := utils.GenerateID(utils.TokenIDSize)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := domain.Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
