package meta

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_ListAdSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().
		Call(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req metaclient.Request) ([]byte, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "act_123/adsets", req.Path)
			assert.Equal(t, "token", req.AccessToken)
			assert.Equal(t, "25", req.Params.Get("limit"))
			assert.Equal(t, "CUR", req.Params.Get("after"))
			assert.Equal(t, `[{"field":"campaign.id","operator":"EQUAL","value":"42"}]`, req.Params.Get("filtering"))
			assert.Equal(t, `["ACTIVE","PAUSED"]`, req.Params.Get("effective_status"))
			assert.Contains(t, req.Params.Get("fields"), "insights{spend,")
			return []byte(`{"data":[{"id":"1","name":"Conjunto","campaign_id":"42","daily_budget":"5000"}],"paging":{"cursors":{"after":"N"},"next":"https://next"}}`), nil
		})

	result, err := integrator.ListAdSets(context.Background(), "token", "act_123", domain.ListFilters{
		Limit:           25,
		After:           "CUR",
		EffectiveStatus: []string{"ACTIVE", "PAUSED"},
		ParentID:        "42",
	})

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "5000", *result.Data[0].DailyBudget)
	assert.True(t, result.Pagination.HasNextPage)
	assert.Equal(t, "N", result.Pagination.NextCursor)
}

func TestMetaIntegrator_ListAdsFilteredByAdSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		Call(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req metaclient.Request) ([]byte, error) {
			assert.Equal(t, "act_1/ads", req.Path)
			assert.Equal(t, `[{"field":"adset.id","operator":"EQUAL","value":"77"}]`, req.Params.Get("filtering"))
			assert.Empty(t, req.Params.Get("effective_status"))
			return []byte(`{"data":[]}`), nil
		})

	result, err := New(client).ListAds(context.Background(), "token", "act_1", domain.ListFilters{Limit: 25, ParentID: "77"})

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.False(t, result.Pagination.HasNextPage)
}

func TestMetaIntegrator_ListCampaignsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	graphErr := metadomain.NewGraphAPIError(metadomain.GraphErrorReturn{StatusCode: http.StatusUnauthorized}, nil)
	client.EXPECT().Call(gomock.Any(), gomock.Any()).Return(nil, graphErr)

	_, err := New(client).ListCampaigns(context.Background(), "token", "act_1", domain.ListFilters{Limit: 25})

	assert.ErrorIs(t, err, graphErr)
}

func TestMetaIntegrator_ListAudiences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		Call(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req metaclient.Request) ([]byte, error) {
			assert.Equal(t, "act_1/customaudiences", req.Path)
			assert.Equal(t, "200", req.Params.Get("limit"))
			return []byte(`{"data":[{"id":"1","name":"Leads","approximate_count_lower_bound":500},{"id":"2"}]}`), nil
		})

	audiences, err := New(client).ListAudiences(context.Background(), "token", "act_1")

	require.NoError(t, err)
	require.Len(t, audiences, 1)
	assert.Equal(t, int64(500), *audiences[0].ApproximateCount)
}

func TestMetaIntegrator_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		Call(gomock.Any(), metaclient.Request{
			Method:      http.MethodPost,
			Path:        "555",
			Params:      url.Values{"status": {"PAUSED"}},
			AccessToken: "token",
		}).
		Return([]byte(`{"success":true}`), nil)

	require.NoError(t, New(client).UpdateStatus(context.Background(), "token", "555", "PAUSED"))
}

func TestInsightsParams(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.InsightsFilters
		check   func(t *testing.T, params url.Values)
	}{
		{
			name:    "date_preset tem precedência",
			filters: domain.InsightsFilters{DatePreset: "last_30d", Since: "2024-01-01", Until: "2024-01-31"},
			check: func(t *testing.T, params url.Values) {
				assert.Equal(t, "last_30d", params.Get("date_preset"))
				assert.Empty(t, params.Get("time_range"))
			},
		},
		{
			name:    "time_range com since e until",
			filters: domain.InsightsFilters{Since: "2024-01-01", Until: "2024-01-31", TimeIncrement: "1"},
			check: func(t *testing.T, params url.Values) {
				assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-31"}`, params.Get("time_range"))
				assert.Equal(t, "1", params.Get("time_increment"))
			},
		},
		{
			name:    "since sem until não envia período",
			filters: domain.InsightsFilters{Since: "2024-01-01"},
			check: func(t *testing.T, params url.Values) {
				assert.Empty(t, params.Get("time_range"))
				assert.Empty(t, params.Get("date_preset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := insightsParams(tt.filters)
			require.NoError(t, err)
			assert.Equal(t, insightsFields, params.Get("fields"))
			tt.check(t, params)
		})
	}
}

func TestMetaIntegrator_GetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		Call(gomock.Any(), gomock.Any()).
		Return([]byte(`{"data":[{"spend":"1.00","date_start":"2024-01-01"},{"spend":"2.00","date_start":"2024-01-02"}]}`), nil)

	rows, err := New(client).GetInsights(context.Background(), "token", "10", domain.InsightsFilters{TimeIncrement: "1"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2.00", rows[1].Spend)
}

func TestMetaIntegrator_GetAdSetForEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		Call(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req metaclient.Request) ([]byte, error) {
			assert.Equal(t, "id,name,daily_budget,campaign_id,targeting", req.Params.Get("fields"))
			return []byte(`{"id":"10","name":"Conjunto","campaign_id":"1","targeting":{"geo_locations":{"countries":["BR"]}}}`), nil
		})

	adSet, err := New(client).GetAdSetForEdit(context.Background(), "token", "10")

	require.NoError(t, err)
	assert.Nil(t, adSet.DailyBudget)
	assert.JSONEq(t, `{"geo_locations":{"countries":["BR"]}}`, string(adSet.Targeting))
}

func TestMetaIntegrator_UpdateAdSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	changes := url.Values{"daily_budget": {"4000"}}
	client.EXPECT().
		Call(gomock.Any(), metaclient.Request{Method: http.MethodPost, Path: "10", Body: changes, AccessToken: "token"}).
		Return(nil, errors.New("timeout"))

	assert.Error(t, New(client).UpdateAdSet(context.Background(), "token", "10", changes))
}

func TestMetaIntegrator_GetUserAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		Call(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req metaclient.Request) ([]byte, error) {
			assert.Equal(t, "me", req.Path)
			assert.Contains(t, req.Params.Get("fields"), "adaccounts{")
			return []byte(`{"id":"u1","adaccounts":{"data":[{"id":"act_1","account_id":"1","name":"Loja","currency":"BRL"}]}}`), nil
		})

	accounts, err := New(client).GetUserAdAccounts(context.Background(), "token")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Loja", accounts[0].Name)
}
