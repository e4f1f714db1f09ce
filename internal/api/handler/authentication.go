package handler

import (
	"net/http"

	"github.com/vfg2006/meta-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/meta-backoffice-api/pkg/log"
	"github.com/vfg2006/meta-backoffice-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			logger := log.ForContext(r.Context())
			if authenticating.IsCredentialsError(err) {
				logger.WithField("email", req.Email).Warn("Login recusado")
			} else {
				logger.WithError(err).Error("Erro ao realizar login")
			}
			apiErrors.WriteFromError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// GetMe devolve a identidade da sessão atual
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", "You must be logged in to access this resource", "Please log in and try again")
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{ID: claims.UserID, Email: claims.UserEmail})
	}
}
