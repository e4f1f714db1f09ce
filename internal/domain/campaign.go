package domain

// Campaign é a representação interna (camelCase) de uma campanha do Meta
type Campaign struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	EffectiveStatus string           `json:"effectiveStatus"`
	Objective       string           `json:"objective,omitempty"`
	DailyBudget     *string          `json:"dailyBudget,omitempty"`
	LifetimeBudget  *string          `json:"lifetimeBudget,omitempty"`
	BudgetRemaining *string          `json:"budgetRemaining,omitempty"`
	StartTime       *string          `json:"startTime,omitempty"`
	StopTime        *string          `json:"stopTime,omitempty"`
	CreatedTime     string           `json:"createdTime"`
	UpdatedTime     string           `json:"updatedTime"`
	Insights        *InsightsMetrics `json:"insights,omitempty"`
}

type AdSet struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Status           string           `json:"status"`
	EffectiveStatus  string           `json:"effectiveStatus"`
	CampaignID       string           `json:"campaignId"`
	DailyBudget      *string          `json:"dailyBudget,omitempty"`
	LifetimeBudget   *string          `json:"lifetimeBudget,omitempty"`
	BudgetRemaining  *string          `json:"budgetRemaining,omitempty"`
	StartTime        *string          `json:"startTime,omitempty"`
	EndTime          *string          `json:"endTime,omitempty"`
	CreatedTime      string           `json:"createdTime"`
	UpdatedTime      string           `json:"updatedTime"`
	OptimizationGoal string           `json:"optimizationGoal,omitempty"`
	BillingEvent     string           `json:"billingEvent,omitempty"`
	BidAmount        *int64           `json:"bidAmount,omitempty"`
	Targeting        *AdSetTargeting  `json:"targeting,omitempty"`
	Insights         *InsightsMetrics `json:"insights,omitempty"`
}

type Ad struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	EffectiveStatus string           `json:"effectiveStatus"`
	AdSetID         string           `json:"adsetId"`
	CampaignID      string           `json:"campaignId"`
	CreatedTime     string           `json:"createdTime"`
	UpdatedTime     string           `json:"updatedTime"`
	Creative        *Creative        `json:"creative,omitempty"`
	Insights        *InsightsMetrics `json:"insights,omitempty"`
}

type Creative struct {
	ID                     string `json:"id"`
	Name                   string `json:"name,omitempty"`
	Title                  string `json:"title,omitempty"`
	Body                   string `json:"body,omitempty"`
	ImageURL               string `json:"imageUrl,omitempty"`
	ThumbnailURL           string `json:"thumbnailUrl,omitempty"`
	EffectiveObjectStoryID string `json:"effectiveObjectStoryId,omitempty"`
}

// Audience é um público personalizado; ApproximateCount usa o limite inferior informado pelo Meta
type Audience struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Subtype          string `json:"subtype,omitempty"`
	ApproximateCount *int64 `json:"approximateCount,omitempty"`
}

// AdAccount é uma conta de anúncios acessível pelo token do usuário
type AdAccount struct {
	ID            string  `json:"id"`
	AccountID     string  `json:"accountId"`
	Name          string  `json:"name,omitempty"`
	AccountStatus *int    `json:"accountStatus,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Balance       *string `json:"balance,omitempty"`
	BusinessID    string  `json:"businessId,omitempty"`
}

// Status aceitos pelo toggle de entidades
const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

func IsToggleStatus(status string) bool {
	return status == StatusActive || status == StatusPaused
}
