package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/marketing"
)

// GetUserAdAccounts lista as contas de anúncio acessíveis pelo token do usuário
func GetUserAdAccounts(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		accounts, err := service.ListUserAdAccounts(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar contas de anúncio do usuário")
			return
		}

		if accounts == nil {
			accounts = []domain.AdAccount{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"data": accounts})
	}
}
