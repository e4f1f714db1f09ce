package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rotas públicas não exigem token", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(ctrl)
		rec := httptest.NewRecorder()

		AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sem Authorization responde 401 em JSON", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(ctrl)
		rec := httptest.NewRecorder()

		AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts/1/campaigns", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Not authenticated","message":"You must be logged in to access this resource","solution":"Please log in and try again"}`, rec.Body.String())
	})

	t.Run("token inválido", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().ValidateToken("ruim").Return(nil, errors.New("invalid"))
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/1/campaigns", nil)
		req.Header.Set("Authorization", "Bearer ruim")
		rec := httptest.NewRecorder()

		AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token válido coloca as claims no contexto", func(t *testing.T) {
		auth := mocks.NewMockAuthenticator(ctrl)
		claims := &domain.Claims{UserID: "u1", UserEmail: "admin@empresa.com"}
		auth.EXPECT().ValidateToken("bom").Return(claims, nil)
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/1/campaigns", nil)
		req.Header.Set("Authorization", "Bearer bom")
		rec := httptest.NewRecorder()

		var got *domain.Claims
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = ClaimsFromContext(r.Context())
		})

		AuthMiddleware(auth)(next).ServeHTTP(rec, req)

		require.NotNil(t, got)
		assert.Equal(t, "u1", got.UserID)
	})
}

func TestAdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withClaims := func(claims *domain.Claims) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/1/ads", nil)
		if claims != nil {
			req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
		}
		return req
	}

	t.Run("admin passa", func(t *testing.T) {
		checker := mocks.NewMockAuthenticator(ctrl)
		checker.EXPECT().IsAdmin("admin@empresa.com").Return(true)
		rec := httptest.NewRecorder()

		AdminOnly(checker)(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserEmail: "admin@empresa.com"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("fora da allowlist recebe 403", func(t *testing.T) {
		checker := mocks.NewMockAuthenticator(ctrl)
		checker.EXPECT().IsAdmin("outro@empresa.com").Return(false)
		rec := httptest.NewRecorder()

		AdminOnly(checker)(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserEmail: "outro@empresa.com"}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("sem sessão recebe 401", func(t *testing.T) {
		checker := mocks.NewMockAuthenticator(ctrl)
		rec := httptest.NewRecorder()

		AdminOnly(checker)(okHandler()).ServeHTTP(rec, withClaims(nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("preflight de origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/accounts/1/adsets/2/edit", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})

	t.Run("origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts/1/ads", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestLoggingMiddleware_CorrelationHeader(t *testing.T) {
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}
