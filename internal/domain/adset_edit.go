package domain

import (
	"encoding/json"
	"time"
)

type EditAdSetRequest struct {
	UserID      string                `json:"userId"`
	CampaignID  *string               `json:"campaignId,omitempty"`
	AdSetName   *string               `json:"adsetName,omitempty"`
	DailyBudget *float64              `json:"dailyBudget,omitempty"`
	Targeting   *EditTargetingRequest `json:"targeting,omitempty"`
	Note        string                `json:"note"`
}

// EditTargetingRequest usa ponteiros para diferenciar campo ausente de lista vazia.
// GeoLocations é aceito mas nunca aplicado: a localização não é editável.
type EditTargetingRequest struct {
	AgeMin                  *int           `json:"age_min,omitempty"`
	AgeMax                  *int           `json:"age_max,omitempty"`
	Genders                 *[]int         `json:"genders,omitempty"`
	GeoLocations            *GeoLocations  `json:"geo_locations,omitempty"`
	CustomAudiences         *[]AudienceRef `json:"custom_audiences,omitempty"`
	ExcludedCustomAudiences *[]AudienceRef `json:"excluded_custom_audiences,omitempty"`
}

func (t *EditTargetingRequest) HasChanges() bool {
	if t == nil {
		return false
	}

	return t.AgeMin != nil ||
		t.AgeMax != nil ||
		t.Genders != nil ||
		t.CustomAudiences != nil ||
		t.ExcludedCustomAudiences != nil
}

type BudgetChange struct {
	Previous *string `json:"previous"`
	New      string  `json:"new"`
}

type TargetingChange struct {
	Previous json.RawMessage `json:"previous"`
	New      AdSetTargeting  `json:"new"`
}

type AdSetChanges struct {
	DailyBudget *BudgetChange    `json:"dailyBudget,omitempty"`
	Targeting   *TargetingChange `json:"targeting,omitempty"`
}

type EditAdSetResponse struct {
	Success bool         `json:"success"`
	LogID   string       `json:"logId"`
	Changes AdSetChanges `json:"changes"`
}

// AdSetEditLog é o registro de auditoria de uma tentativa de edição.
// ErrorMessage só é preenchido quando AppliedToMeta é falso.
type AdSetEditLog struct {
	ID                  string          `json:"id"`
	BackofficeUserID    string          `json:"backofficeUserId"`
	TargetUserID        string          `json:"targetUserId"`
	AdSetID             string          `json:"adsetId"`
	AccountID           string          `json:"accountId"`
	CampaignID          *string         `json:"campaignId"`
	AdSetName           *string         `json:"adsetName"`
	PreviousDailyBudget *string         `json:"previousDailyBudget"`
	NewDailyBudget      *string         `json:"newDailyBudget"`
	PreviousTargeting   json.RawMessage `json:"previousTargeting"`
	NewTargeting        json.RawMessage `json:"newTargeting"`
	Note                string          `json:"note"`
	AppliedToMeta       bool            `json:"appliedToMeta"`
	ErrorMessage        *string         `json:"errorMessage"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type AdSetEditLogWithAdmin struct {
	AdSetEditLog
	AdminEmail *string `json:"adminEmail"`
}
