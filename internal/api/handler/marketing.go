package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/marketing"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/meta-backoffice-api/pkg/log"
)

// UpdateStatusRequest aceita o id de qualquer entidade; cada rota lê o seu campo
type UpdateStatusRequest struct {
	CampaignID string `json:"campaignId"`
	AdSetID    string `json:"adsetId"`
	AdID       string `json:"adId"`
	Status     string `json:"status"`
}

type EntityStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// statusTarget descreve como o corpo e a resposta de um toggle de status são nomeados
type statusTarget struct {
	entity  string
	idField func(UpdateStatusRequest) string
}

var (
	campaignStatusTarget = statusTarget{entity: "campaign", idField: func(r UpdateStatusRequest) string { return r.CampaignID }}
	adSetStatusTarget    = statusTarget{entity: "adset", idField: func(r UpdateStatusRequest) string { return r.AdSetID }}
	adStatusTarget       = statusTarget{entity: "ad", idField: func(r UpdateStatusRequest) string { return r.AdID }}
)

func ListCampaigns(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountId")

		result, err := service.ListCampaigns(r.Context(), query.Get("userId"), accountID, marketing.ParseListFilters(query, ""))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListAdSets(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountId")

		result, err := service.ListAdSets(r.Context(), query.Get("userId"), accountID, marketing.ParseListFilters(query, "campaignId"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar conjuntos de anúncios")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListAds(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountId")

		result, err := service.ListAds(r.Context(), query.Get("userId"), accountID, marketing.ParseListFilters(query, "adsetId"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar anúncios")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListAudiences(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("accountId")

		audiences, err := service.ListAudiences(r.Context(), r.URL.Query().Get("userId"), accountID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar públicos")
			return
		}

		if audiences == nil {
			audiences = []domain.Audience{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"audiences": audiences})
	}
}

func UpdateCampaignStatus(service marketing.MarketingService) http.HandlerFunc {
	return updateStatus(service, campaignStatusTarget)
}

func UpdateAdSetStatus(service marketing.MarketingService) http.HandlerFunc {
	return updateStatus(service, adSetStatusTarget)
}

func UpdateAdStatus(service marketing.MarketingService) http.HandlerFunc {
	return updateStatus(service, adStatusTarget)
}

func updateStatus(service marketing.MarketingService, target statusTarget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		entityID := target.idField(req)

		err := service.UpdateStatus(r.Context(), r.URL.Query().Get("userId"), entityID, req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status de "+target.entity)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"entity":    target.entity,
			"entity_id": entityID,
			"status":    req.Status,
		}).Info("Status atualizado no Meta")

		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			target.entity: EntityStatus{ID: entityID, Status: req.Status},
		})
	}
}

func GetCampaignInsights(service marketing.MarketingService) http.HandlerFunc {
	return getInsights(service, "campaignId")
}

func GetAdSetInsights(service marketing.MarketingService) http.HandlerFunc {
	return getInsights(service, "adsetId")
}

// getInsights responde com o id da entidade sob a mesma chave do parâmetro da rota
func getInsights(service marketing.MarketingService, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		entityID := httprouter.ParamsFromContext(r.Context()).ByName(param)

		result, err := service.GetInsights(r.Context(), query.Get("userId"), entityID, marketing.ParseInsightsFilters(query))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar insights")
			return
		}

		response := map[string]any{param: entityID}
		if result.InsightsArray != nil {
			response["insightsArray"] = result.InsightsArray
		} else {
			response["insights"] = result.Insights
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteFromError(w, err)
}
