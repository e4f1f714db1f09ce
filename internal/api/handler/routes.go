package handler

import (
	"net/http"

	"github.com/vfg2006/meta-backoffice-api/internal/api/handler/router"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/adsetediting"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/marketing"
	"github.com/vfg2006/meta-backoffice-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(service)},
		},
	}
}

func Marketing(service marketing.MarketingService, checker middleware.AdminChecker) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly(checker)}

	return []router.Route{
		{
			Path:        "/v1/accounts/:accountId/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/campaigns",
			Method:      http.MethodPatch,
			Handler:     UpdateCampaignStatus(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/campaigns/:campaignId/insights",
			Method:      http.MethodGet,
			Handler:     GetCampaignInsights(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/adsets",
			Method:      http.MethodGet,
			Handler:     ListAdSets(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/adsets",
			Method:      http.MethodPatch,
			Handler:     UpdateAdSetStatus(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/adsets/:adsetId/insights",
			Method:      http.MethodGet,
			Handler:     GetAdSetInsights(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/ads",
			Method:      http.MethodPatch,
			Handler:     UpdateAdStatus(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/audiences",
			Method:      http.MethodGet,
			Handler:     ListAudiences(service),
			Middlewares: adminOnly,
		},
	}
}

func AdSetEditing(service adsetediting.AdSetEditor, checker middleware.AdminChecker) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly(checker)}

	return []router.Route{
		{
			Path:        "/v1/accounts/:accountId/adsets/:adsetId/edit",
			Method:      http.MethodPatch,
			Handler:     EditAdSet(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/accounts/:accountId/adsets/:adsetId/edit-history",
			Method:      http.MethodGet,
			Handler:     GetAdSetEditHistory(service),
			Middlewares: adminOnly,
		},
	}
}

// UserAdAccounts expõe as contas de anúncio de um usuário conectado ao Meta
func UserAdAccounts(service marketing.MarketingService, checker middleware.AdminChecker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users/:id/ad-accounts",
			Method:      http.MethodGet,
			Handler:     GetUserAdAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(checker)},
		},
	}
}
