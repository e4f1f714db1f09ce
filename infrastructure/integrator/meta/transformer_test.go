package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

func strPtr(v string) *string { return &v }

func TestTransformPaging(t *testing.T) {
	tests := []struct {
		name   string
		paging *metadomain.Paging
		want   domain.PaginationInfo
	}{
		{
			name:   "sem paging",
			paging: nil,
			want:   domain.PaginationInfo{},
		},
		{
			name:   "next sem cursores não preenche cursor",
			paging: &metadomain.Paging{Next: "x"},
			want:   domain.PaginationInfo{HasNextPage: true},
		},
		{
			name: "cursores copiados independente de next/previous",
			paging: &metadomain.Paging{
				Cursors:  &metadomain.Cursors{After: "A", Before: "B"},
				Previous: "p",
			},
			want: domain.PaginationInfo{HasPreviousPage: true, NextCursor: "A", PreviousCursor: "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformPaging(tt.paging))
		})
	}
}

func TestTransformCampaign(t *testing.T) {
	t.Run("campanha sem insights", func(t *testing.T) {
		campaign := TransformCampaign(metadomain.Campaign{
			ID:              "1",
			Name:            "Black Friday",
			Status:          "ACTIVE",
			EffectiveStatus: "CAMPAIGN_PAUSED",
			DailyBudget:     strPtr("5000"),
		})

		assert.Equal(t, "1", campaign.ID)
		assert.Equal(t, "ACTIVE", campaign.Status)
		assert.Equal(t, "CAMPAIGN_PAUSED", campaign.EffectiveStatus)
		assert.Equal(t, "5000", *campaign.DailyBudget)
		assert.Nil(t, campaign.LifetimeBudget)
		assert.Nil(t, campaign.Insights)
	})

	t.Run("envelope vazio não gera insights", func(t *testing.T) {
		campaign := TransformCampaign(metadomain.Campaign{ID: "1", Insights: &metadomain.InsightsEnvelope{}})
		assert.Nil(t, campaign.Insights)
	})

	t.Run("usa a primeira linha de insights", func(t *testing.T) {
		campaign := TransformCampaign(metadomain.Campaign{
			ID: "1",
			Insights: &metadomain.InsightsEnvelope{Data: []metadomain.Insight{
				{
					Spend:     "10.50",
					Actions:   []metadomain.Action{{ActionType: "lead", Value: "3"}, {ActionType: "purchase", Value: "1"}},
					DateStart: "2024-01-01",
				},
				{Spend: "99"},
			}},
		})

		require.NotNil(t, campaign.Insights)
		assert.Equal(t, "10.50", campaign.Insights.Spend)
		assert.Equal(t, "1", *campaign.Insights.Conversions)
		assert.Nil(t, campaign.Insights.CostPerConversion)
		assert.Equal(t, "2024-01-01", campaign.Insights.DateStart)
	})
}

func TestTransformAdSet(t *testing.T) {
	adSet := TransformAdSet(metadomain.AdSet{
		ID:         "10",
		CampaignID: "1",
		Targeting:  []byte(`{"age_min":21,"genders":[2],"geo_locations":{"countries":["BR"]},"flexible_spec":[{"interests":[]}]}`),
	})

	assert.Equal(t, "1", adSet.CampaignID)
	require.NotNil(t, adSet.Targeting)
	assert.Equal(t, 21, *adSet.Targeting.AgeMin)
	assert.Equal(t, []int{2}, adSet.Targeting.Genders)
	assert.Equal(t, []string{"BR"}, adSet.Targeting.GeoLocations.Countries)

	assert.Nil(t, TransformAdSet(metadomain.AdSet{ID: "11"}).Targeting)
	assert.Nil(t, TransformAdSet(metadomain.AdSet{ID: "12", Targeting: []byte(`"invalid"`)}).Targeting)
}

func TestTransformAd(t *testing.T) {
	ad := TransformAd(metadomain.Ad{
		ID:      "100",
		AdSetID: "10",
		Creative: &metadomain.Creative{
			ID:           "c1",
			ImageURL:     "https://img",
			ThumbnailURL: "https://thumb",
		},
	})

	assert.Equal(t, "10", ad.AdSetID)
	require.NotNil(t, ad.Creative)
	assert.Equal(t, "https://img", ad.Creative.ImageURL)
	assert.Equal(t, "https://thumb", ad.Creative.ThumbnailURL)

	assert.Nil(t, TransformAd(metadomain.Ad{ID: "101"}).Creative)
}

func TestTransformAudiences(t *testing.T) {
	lower := int64(1000)
	upper := int64(1200)

	audiences := TransformAudiences([]metadomain.Audience{
		{ID: "1", Name: "Compradores", Subtype: "CUSTOM", ApproximateCountLowerBound: &lower, ApproximateCountUpperBound: &upper},
		{ID: "2"},
	})

	require.Len(t, audiences, 1)
	assert.Equal(t, "Compradores", audiences[0].Name)
	assert.Equal(t, int64(1000), *audiences[0].ApproximateCount)
}

func TestTransformAdAccount(t *testing.T) {
	account := TransformAdAccount(metadomain.AdAccount{
		ID:        "act_1",
		AccountID: "1",
		Currency:  "BRL",
		Business:  &metadomain.Business{ID: "b1"},
	})

	assert.Equal(t, "act_1", account.ID)
	assert.Equal(t, "b1", account.BusinessID)
}
