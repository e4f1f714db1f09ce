package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsight_GetConversions(t *testing.T) {
	tests := []struct {
		name        string
		actions     []Action
		costActions []Action
		wantConv    *string
		wantCost    *string
	}{
		{
			name:        "purchase tem prioridade sobre lead independente da ordem",
			actions:     []Action{{ActionType: "lead", Value: "3"}, {ActionType: "purchase", Value: "1"}},
			costActions: []Action{{ActionType: "lead", Value: "10.5"}, {ActionType: "purchase", Value: "42.1"}},
			wantConv:    strPtr("1"),
			wantCost:    strPtr("42.1"),
		},
		{
			name:     "lead antes de complete_registration",
			actions:  []Action{{ActionType: "complete_registration", Value: "7"}, {ActionType: "lead", Value: "2"}},
			wantConv: strPtr("2"),
		},
		{
			name:        "listas avaliadas separadamente",
			actions:     []Action{{ActionType: "lead", Value: "5"}},
			costActions: []Action{{ActionType: "complete_registration", Value: "3.2"}},
			wantConv:    strPtr("5"),
			wantCost:    strPtr("3.2"),
		},
		{
			name:    "sem tipos reconhecidos",
			actions: []Action{{ActionType: "link_click", Value: "99"}},
		},
		{
			name: "sem ações",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := &Insight{Actions: tt.actions, CostPerActions: tt.costActions}

			assertStrPtr(t, tt.wantConv, insight.GetConversions())
			assertStrPtr(t, tt.wantCost, insight.GetCostPerConversion())
		})
	}
}

func strPtr(v string) *string { return &v }

func assertStrPtr(t *testing.T, want, got *string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)
}
