package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-backoffice-api/internal/config"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	editingmocks "github.com/vfg2006/meta-backoffice-api/internal/usecases/adsetediting/mocks"
	authmocks "github.com/vfg2006/meta-backoffice-api/internal/usecases/authenticating/mocks"
	marketingmocks "github.com/vfg2006/meta-backoffice-api/internal/usecases/marketing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*Server, *authmocks.MockAuthenticator, *marketingmocks.MockMarketingService) {
	ctrl := gomock.NewController(t)

	authenticator := authmocks.NewMockAuthenticator(ctrl)
	marketingService := marketingmocks.NewMockMarketingService(ctrl)
	editor := editingmocks.NewMockAdSetEditor(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, authenticator, marketingService, editor)
	require.NoError(t, err)

	return srv, authenticator, marketingService
}

func TestServer_RequiresSession(t *testing.T) {
	srv, authenticator, _ := newTestServer(t)

	t.Run("sem header Authorization", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts/1/campaigns?userId=u", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error":"Not authenticated"`)
	})

	t.Run("token inválido", func(t *testing.T) {
		authenticator.EXPECT().ValidateToken("ruim").Return(nil, errors.New("invalid"))

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/1/campaigns?userId=u", nil)
		req.Header.Set("Authorization", "Bearer ruim")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_AdminSession(t *testing.T) {
	srv, authenticator, marketingService := newTestServer(t)

	authenticator.EXPECT().
		ValidateToken("valido").
		Return(&domain.Claims{UserID: "admin-1", UserEmail: "admin@x.com"}, nil)
	authenticator.EXPECT().IsAdmin("admin@x.com").Return(true)
	marketingService.EXPECT().
		ListAudiences(gomock.Any(), "u", "1").
		Return([]domain.Audience{{ID: "aud-1", Name: "Compradores"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/1/audiences?userId=u", nil)
	req.Header.Set("Authorization", "Bearer valido")
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, rec.Body.String(), `"aud-1"`)
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, authenticator, _ := newTestServer(t)

	authenticator.EXPECT().LoginUser(gomock.Any(), "admin@x.com", "secret").Return("jwt", nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"admin@x.com","password":"secret"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	preflight := httptest.NewRequest(http.MethodOptions, "/v1/accounts/1/adsets/2/edit", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, preflight)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
