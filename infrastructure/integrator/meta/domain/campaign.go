package metadomain

import (
	stdjson "encoding/json"
)

type Campaign struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Status          string            `json:"status"`
	EffectiveStatus string            `json:"effective_status"`
	Objective       string            `json:"objective"`
	DailyBudget     *string           `json:"daily_budget"`
	LifetimeBudget  *string           `json:"lifetime_budget"`
	BudgetRemaining *string           `json:"budget_remaining"`
	StartTime       *string           `json:"start_time"`
	StopTime        *string           `json:"stop_time"`
	CreatedTime     string            `json:"created_time"`
	UpdatedTime     string            `json:"updated_time"`
	Insights        *InsightsEnvelope `json:"insights"`
}

// AdSet mantém o targeting cru: ele é gravado integralmente na auditoria
type AdSet struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Status           string             `json:"status"`
	EffectiveStatus  string             `json:"effective_status"`
	CampaignID       string             `json:"campaign_id"`
	DailyBudget      *string            `json:"daily_budget"`
	LifetimeBudget   *string            `json:"lifetime_budget"`
	BudgetRemaining  *string            `json:"budget_remaining"`
	StartTime        *string            `json:"start_time"`
	EndTime          *string            `json:"end_time"`
	CreatedTime      string             `json:"created_time"`
	UpdatedTime      string             `json:"updated_time"`
	OptimizationGoal string             `json:"optimization_goal"`
	BillingEvent     string             `json:"billing_event"`
	BidAmount        *int64             `json:"bid_amount"`
	Targeting        stdjson.RawMessage `json:"targeting"`
	Insights         *InsightsEnvelope  `json:"insights"`
}

type Ad struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Status          string            `json:"status"`
	EffectiveStatus string            `json:"effective_status"`
	AdSetID         string            `json:"adset_id"`
	CampaignID      string            `json:"campaign_id"`
	CreatedTime     string            `json:"created_time"`
	UpdatedTime     string            `json:"updated_time"`
	Creative        *Creative         `json:"creative"`
	Insights        *InsightsEnvelope `json:"insights"`
}

type Creative struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Title                  string `json:"title"`
	Body                   string `json:"body"`
	ImageURL               string `json:"image_url"`
	ThumbnailURL           string `json:"thumbnail_url"`
	EffectiveObjectStoryID string `json:"effective_object_story_id"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  *Cursors `json:"cursors"`
	Next     string   `json:"next"`
	Previous string   `json:"previous"`
}

type ListResponse[T any] struct {
	Data   []T     `json:"data"`
	Paging *Paging `json:"paging"`
}

// StatusResponse é a resposta do Graph para mutações simples
type StatusResponse struct {
	Success bool `json:"success"`
}
