package adsetediting

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/account"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/marketing"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type AdSetEditor interface {
	EditAdSet(ctx context.Context, backofficeUserID, accountID, adSetID string, req *domain.EditAdSetRequest) (*domain.EditAdSetResponse, error)
	ListEditHistory(ctx context.Context, adSetID string) ([]*domain.AdSetEditLogWithAdmin, error)
}

type Service struct {
	tokenResolver account.TokenResolver
	metaService   meta.Integrator
	editLogRepo   repository.AdSetEditLogRepository
}

func NewService(
	tokenResolver account.TokenResolver,
	metaService meta.Integrator,
	editLogRepo repository.AdSetEditLogRepository,
) AdSetEditor {
	return &Service{
		tokenResolver: tokenResolver,
		metaService:   metaService,
		editLogRepo:   editLogRepo,
	}
}

// EditAdSet confere o estado atual no Meta, calcula o diff, aplica e registra
// exatamente uma linha de auditoria. Falhas anteriores ao envio não geram registro.
func (s *Service) EditAdSet(ctx context.Context, backofficeUserID, accountID, adSetID string, req *domain.EditAdSetRequest) (*domain.EditAdSetResponse, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	accessToken, err := s.tokenResolver.ResolveToken(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	current, err := s.metaService.GetAdSetForEdit(ctx, accessToken, adSetID)
	if err != nil {
		return nil, err
	}

	previousTargetingRaw := rawTargeting(current.Targeting)
	updateParams := url.Values{}
	changes := domain.AdSetChanges{}

	var newBudget *string
	if req.DailyBudget != nil {
		if current.DailyBudget == nil {
			return nil, validationError(
				"Campaign uses CBO",
				"Este conjunto de anúncios pertence a uma campanha com Orçamento de Campanha (CBO). O orçamento diário não pode ser alterado no nível do conjunto de anúncios.",
				"Para alterar o orçamento, edite-o diretamente na campanha.",
			)
		}

		budget := BudgetToMinorUnits(*req.DailyBudget)
		newBudget = &budget
		updateParams.Set("daily_budget", budget)
		changes.DailyBudget = &domain.BudgetChange{
			Previous: current.DailyBudget,
			New:      budget,
		}
	}

	var newTargetingRaw []byte
	if req.Targeting.HasChanges() {
		var previous *domain.AdSetTargeting
		if previousTargetingRaw != nil {
			previous = &domain.AdSetTargeting{}
			if err := json.Unmarshal(previousTargetingRaw, previous); err != nil {
				return nil, apiErrors.Wrap(err, apiErrors.ErrInternalServer, "Internal server error", "Please try again later")
			}
		}

		merged, err := MergeTargeting(previous, req.Targeting)
		if err != nil {
			return nil, err
		}

		metaPayload, err := json.Marshal(merged.WithoutAudienceNames())
		if err != nil {
			return nil, err
		}

		newTargetingRaw, err = json.Marshal(merged)
		if err != nil {
			return nil, err
		}

		updateParams.Set("targeting", string(metaPayload))
		changes.Targeting = &domain.TargetingChange{
			Previous: previousTargetingRaw,
			New:      merged,
		}
	}

	editLog := &domain.AdSetEditLog{
		BackofficeUserID:    backofficeUserID,
		TargetUserID:        req.UserID,
		AdSetID:             adSetID,
		AccountID:           marketing.NormalizeAccountID(accountID),
		CampaignID:          firstNonEmpty(req.CampaignID, current.CampaignID),
		AdSetName:           firstNonEmpty(req.AdSetName, current.Name),
		PreviousDailyBudget: current.DailyBudget,
		NewDailyBudget:      newBudget,
		PreviousTargeting:   previousTargetingRaw,
		NewTargeting:        newTargetingRaw,
		Note:                strings.TrimSpace(req.Note),
		AppliedToMeta:       true,
	}

	logger := logrus.WithFields(logrus.Fields{
		"adset_id":           adSetID,
		"account_id":         editLog.AccountID,
		"backoffice_user_id": backofficeUserID,
		"target_user_id":     req.UserID,
	})

	applyErr := s.metaService.UpdateAdSet(ctx, accessToken, adSetID, updateParams)
	if applyErr != nil {
		errorReturn := metadomain.ErrorToGraphErrorReturn(applyErr)
		message := fmt.Sprintf("%s: %s", errorReturn.Reason.Title, errorReturn.Reason.Message)
		editLog.AppliedToMeta = false
		editLog.ErrorMessage = &message
		logger.WithError(applyErr).Warn("Edição do conjunto rejeitada pelo Meta")
	}

	saved, err := s.editLogRepo.Create(ctx, editLog)
	if err != nil {
		logger.WithError(err).Error("Erro ao registrar auditoria da edição")
		return nil, apiErrors.Wrap(err, apiErrors.ErrDatabaseOperation, "Internal server error", "Please try again later")
	}

	if applyErr != nil {
		return nil, &ApplyError{
			LogID:   saved.ID,
			Message: *editLog.ErrorMessage,
			Err:     applyErr,
		}
	}

	logger.WithField("log_id", saved.ID).Info("Edição do conjunto aplicada no Meta")

	return &domain.EditAdSetResponse{
		Success: true,
		LogID:   saved.ID,
		Changes: changes,
	}, nil
}

func (s *Service) ListEditHistory(ctx context.Context, adSetID string) ([]*domain.AdSetEditLogWithAdmin, error) {
	logs, err := s.editLogRepo.ListByAdSetID(ctx, adSetID)
	if err != nil {
		logrus.WithError(err).WithField("adset_id", adSetID).Error("Erro ao buscar histórico de edições")
		return nil, apiErrors.Wrap(err, apiErrors.ErrDatabaseOperation, "Internal server error", "Please try again later")
	}

	return logs, nil
}

func rawTargeting(raw []byte) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

func firstNonEmpty(requested *string, current string) *string {
	if requested != nil {
		return requested
	}
	if current == "" {
		return nil
	}
	return &current
}
