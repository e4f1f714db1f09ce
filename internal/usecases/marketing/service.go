package marketing

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/account"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type MarketingService interface {
	ListCampaigns(ctx context.Context, userID, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Campaign], error)
	ListAdSets(ctx context.Context, userID, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.AdSet], error)
	ListAds(ctx context.Context, userID, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Ad], error)
	ListAudiences(ctx context.Context, userID, accountID string) ([]domain.Audience, error)
	UpdateStatus(ctx context.Context, userID, entityID, status string) error
	GetInsights(ctx context.Context, userID, entityID string, filters domain.InsightsFilters) (*domain.InsightsResult, error)
	ListUserAdAccounts(ctx context.Context, userID string) ([]domain.AdAccount, error)
}

type Service struct {
	tokenResolver account.TokenResolver
	metaService   meta.Integrator
}

func NewService(tokenResolver account.TokenResolver, metaService meta.Integrator) MarketingService {
	return &Service{
		tokenResolver: tokenResolver,
		metaService:   metaService,
	}
}

func (s *Service) ListCampaigns(ctx context.Context, userID, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Campaign], error) {
	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.metaService.ListCampaigns(ctx, accessToken, NormalizeAccountID(accountID), filters)
}

func (s *Service) ListAdSets(ctx context.Context, userID, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.AdSet], error) {
	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.metaService.ListAdSets(ctx, accessToken, NormalizeAccountID(accountID), filters)
}

func (s *Service) ListAds(ctx context.Context, userID, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Ad], error) {
	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.metaService.ListAds(ctx, accessToken, NormalizeAccountID(accountID), filters)
}

func (s *Service) ListAudiences(ctx context.Context, userID, accountID string) ([]domain.Audience, error) {
	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.metaService.ListAudiences(ctx, accessToken, NormalizeAccountID(accountID))
}

// UpdateStatus aceita apenas ACTIVE e PAUSED; a transição em si é validada pelo Meta
func (s *Service) UpdateStatus(ctx context.Context, userID, entityID, status string) error {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" || status == "" {
		return apiErrors.New(
			apiErrors.ErrMissingRequiredData,
			"Invalid request",
			"id and status are required",
			"Provide both the entity id and status in the request body",
		)
	}

	if !domain.IsToggleStatus(status) {
		return apiErrors.New(
			apiErrors.ErrInvalidFormat,
			"Invalid status",
			"status must be ACTIVE or PAUSED",
			"Send ACTIVE to enable or PAUSED to disable",
		)
	}

	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.metaService.UpdateStatus(ctx, accessToken, entityID, status); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"entity_id": entityID,
		"status":    status,
		"user_id":   userID,
	}).Info("Status atualizado no Meta")

	return nil
}

// GetInsights devolve a série diária quando timeIncrement é informado e há linhas,
// caso contrário o primeiro agregado (ou nenhum)
func (s *Service) GetInsights(ctx context.Context, userID, entityID string, filters domain.InsightsFilters) (*domain.InsightsResult, error) {
	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.metaService.GetInsights(ctx, accessToken, entityID, filters)
	if err != nil {
		return nil, err
	}

	result := &domain.InsightsResult{}
	switch {
	case filters.TimeIncrement != "" && len(rows) > 0:
		result.InsightsArray = rows
	case len(rows) > 0:
		result.Insights = &rows[0]
	}

	return result, nil
}

func (s *Service) ListUserAdAccounts(ctx context.Context, userID string) ([]domain.AdAccount, error) {
	accessToken, err := s.tokenResolver.ResolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.metaService.GetUserAdAccounts(ctx, accessToken)
}
