package domain

// InsightsMetrics mantém os valores decimais como strings, exatamente como o Meta envia
type InsightsMetrics struct {
	Spend             string  `json:"spend,omitempty"`
	Impressions       string  `json:"impressions,omitempty"`
	Clicks            string  `json:"clicks,omitempty"`
	Reach             string  `json:"reach,omitempty"`
	CPC               string  `json:"cpc,omitempty"`
	CPM               string  `json:"cpm,omitempty"`
	CTR               string  `json:"ctr,omitempty"`
	CPP               string  `json:"cpp,omitempty"`
	Frequency         string  `json:"frequency,omitempty"`
	Conversions       *string `json:"conversions,omitempty"`
	CostPerConversion *string `json:"costPerConversion,omitempty"`
	DateStart         string  `json:"dateStart,omitempty"`
	DateStop          string  `json:"dateStop,omitempty"`
}

type InsightsFilters struct {
	DatePreset    string
	Since         string
	Until         string
	TimeIncrement string
}

// InsightsResult carrega um único agregado ou a série temporal, nunca os dois
type InsightsResult struct {
	Insights      *InsightsMetrics
	InsightsArray []InsightsMetrics
}
