package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/adsetediting"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/meta-backoffice-api/pkg/log"
	"github.com/vfg2006/meta-backoffice-api/pkg/middleware"
)

// EditAdSet aplica orçamento e/ou público no Meta e registra a tentativa em auditoria.
// O administrador vem da sessão; o userId do corpo é o dono do token do Meta.
func EditAdSet(service adsetediting.AdSetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", "You must be logged in to access this resource", "Please log in and try again")
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("accountId")
		adSetID := params.ByName("adsetId")

		var req domain.EditAdSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"adset_id":   adSetID,
			"account_id": accountID,
			"admin":      claims.UserEmail,
		})

		response, err := service.EditAdSet(r.Context(), claims.UserID, accountID, adSetID, &req)
		if err != nil {
			logger.WithError(err).Warn("Edição do conjunto de anúncios não concluída")
			apiErrors.WriteFromError(w, err)
			return
		}

		logger.WithField("log_id", response.LogID).Info("Conjunto de anúncios editado")
		writeJSON(w, http.StatusOK, response)
	}
}

func GetAdSetEditHistory(service adsetediting.AdSetEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("adsetId")

		logs, err := service.ListEditHistory(r.Context(), adSetID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de edições")
			return
		}

		if logs == nil {
			logs = []*domain.AdSetEditLogWithAdmin{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"logs": logs})
	}
}
