package marketing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 25},
		{raw: "10", want: 10},
		{raw: "100", want: 100},
		{raw: "250", want: 100},
		{raw: "0", want: 25},
		{raw: "-3", want: 25},
		{raw: "abc", want: 25},
		{raw: " 40 ", want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLimit(tt.raw))
		})
	}
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "act_123", NormalizeAccountID("123"))
	assert.Equal(t, "act_123", NormalizeAccountID("act_123"))
	assert.Equal(t, "", NormalizeAccountID(""))
}

func TestParseStatuses(t *testing.T) {
	assert.Nil(t, ParseStatuses(""))
	assert.Equal(t, []string{"ACTIVE", "PAUSED"}, ParseStatuses("ACTIVE, PAUSED,"))
}

func TestParseListFilters(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "500")
	query.Set("after", "c2")
	query.Set("effectiveStatus", "ACTIVE")
	query.Set("campaignId", " 42 ")

	filters := ParseListFilters(query, "campaignId")

	assert.Equal(t, domain.ListFilters{
		Limit:           100,
		After:           "c2",
		EffectiveStatus: []string{"ACTIVE"},
		ParentID:        "42",
	}, filters)
}

func TestParseInsightsFilters(t *testing.T) {
	query := url.Values{}
	query.Set("since", "2024-01-01")
	query.Set("until", "2024-01-31")
	query.Set("timeIncrement", "1")

	assert.Equal(t, domain.InsightsFilters{
		Since:         "2024-01-01",
		Until:         "2024-01-31",
		TimeIncrement: "1",
	}, ParseInsightsFilters(query))
}
