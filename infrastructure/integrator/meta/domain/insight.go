package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Insight struct {
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Clicks         string   `json:"clicks"`
	Reach          string   `json:"reach"`
	CPC            string   `json:"cpc"`
	CPM            string   `json:"cpm"`
	CTR            string   `json:"ctr"`
	CPP            string   `json:"cpp"`
	Frequency      string   `json:"frequency"`
	Actions        []Action `json:"actions"`
	CostPerActions []Action `json:"cost_per_action_type"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}

type InsightsEnvelope struct {
	Data []Insight `json:"data"`
}

// ConversionActionTypes em ordem de prioridade
var ConversionActionTypes = []string{
	"purchase",
	"lead",
	"complete_registration",
}

// GetConversions retorna o valor da ação de conversão de maior prioridade
func (i *Insight) GetConversions() *string {
	return findByPriority(i.Actions)
}

// GetCostPerConversion aplica a mesma prioridade sobre cost_per_action_type
func (i *Insight) GetCostPerConversion() *string {
	return findByPriority(i.CostPerActions)
}

func findByPriority(actions []Action) *string {
	if len(actions) == 0 {
		return nil
	}

	byType := make(map[string]string, len(actions))
	for _, action := range actions {
		if _, exists := byType[action.ActionType]; !exists {
			byType[action.ActionType] = action.Value
		}
	}

	for _, actionType := range ConversionActionTypes {
		if value, ok := byType[actionType]; ok {
			return &value
		}
	}

	return nil
}
