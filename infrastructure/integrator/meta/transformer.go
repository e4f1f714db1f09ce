package meta

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

// TransformInsights usa apenas a primeira linha do envelope; sem linhas, não há insights
func TransformInsights(envelope *metadomain.InsightsEnvelope) *domain.InsightsMetrics {
	if envelope == nil || len(envelope.Data) == 0 {
		return nil
	}

	metrics := TransformInsightsRow(envelope.Data[0])
	return &metrics
}

func TransformInsightsRow(row metadomain.Insight) domain.InsightsMetrics {
	return domain.InsightsMetrics{
		Spend:             row.Spend,
		Impressions:       row.Impressions,
		Clicks:            row.Clicks,
		Reach:             row.Reach,
		CPC:               row.CPC,
		CPM:               row.CPM,
		CTR:               row.CTR,
		CPP:               row.CPP,
		Frequency:         row.Frequency,
		Conversions:       row.GetConversions(),
		CostPerConversion: row.GetCostPerConversion(),
		DateStart:         row.DateStart,
		DateStop:          row.DateStop,
	}
}

func TransformCampaign(campaign metadomain.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:              campaign.ID,
		Name:            campaign.Name,
		Status:          campaign.Status,
		EffectiveStatus: campaign.EffectiveStatus,
		Objective:       campaign.Objective,
		DailyBudget:     campaign.DailyBudget,
		LifetimeBudget:  campaign.LifetimeBudget,
		BudgetRemaining: campaign.BudgetRemaining,
		StartTime:       campaign.StartTime,
		StopTime:        campaign.StopTime,
		CreatedTime:     campaign.CreatedTime,
		UpdatedTime:     campaign.UpdatedTime,
		Insights:        TransformInsights(campaign.Insights),
	}
}

func TransformAdSet(adSet metadomain.AdSet) domain.AdSet {
	return domain.AdSet{
		ID:               adSet.ID,
		Name:             adSet.Name,
		Status:           adSet.Status,
		EffectiveStatus:  adSet.EffectiveStatus,
		CampaignID:       adSet.CampaignID,
		DailyBudget:      adSet.DailyBudget,
		LifetimeBudget:   adSet.LifetimeBudget,
		BudgetRemaining:  adSet.BudgetRemaining,
		StartTime:        adSet.StartTime,
		EndTime:          adSet.EndTime,
		CreatedTime:      adSet.CreatedTime,
		UpdatedTime:      adSet.UpdatedTime,
		OptimizationGoal: adSet.OptimizationGoal,
		BillingEvent:     adSet.BillingEvent,
		BidAmount:        adSet.BidAmount,
		Targeting:        TransformTargeting(adSet.ID, adSet.Targeting),
		Insights:         TransformInsights(adSet.Insights),
	}
}

// TransformTargeting decodifica só os campos que o backoffice conhece.
// Um targeting ilegível é ignorado para não derrubar a listagem inteira.
func TransformTargeting(adSetID string, raw []byte) *domain.AdSetTargeting {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var targeting domain.AdSetTargeting
	if err := json.Unmarshal(raw, &targeting); err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"error":    err.Error(),
		}).Warn("meta: targeting em formato inesperado")
		return nil
	}

	return &targeting
}

func TransformAd(ad metadomain.Ad) domain.Ad {
	return domain.Ad{
		ID:              ad.ID,
		Name:            ad.Name,
		Status:          ad.Status,
		EffectiveStatus: ad.EffectiveStatus,
		AdSetID:         ad.AdSetID,
		CampaignID:      ad.CampaignID,
		CreatedTime:     ad.CreatedTime,
		UpdatedTime:     ad.UpdatedTime,
		Creative:        TransformCreative(ad.Creative),
		Insights:        TransformInsights(ad.Insights),
	}
}

func TransformCreative(creative *metadomain.Creative) *domain.Creative {
	if creative == nil {
		return nil
	}

	return &domain.Creative{
		ID:                     creative.ID,
		Name:                   creative.Name,
		Title:                  creative.Title,
		Body:                   creative.Body,
		ImageURL:               creative.ImageURL,
		ThumbnailURL:           creative.ThumbnailURL,
		EffectiveObjectStoryID: creative.EffectiveObjectStoryID,
	}
}

// TransformPaging deriva os booleanos de next/previous e copia os cursores sem validação
func TransformPaging(paging *metadomain.Paging) domain.PaginationInfo {
	if paging == nil {
		return domain.PaginationInfo{}
	}

	info := domain.PaginationInfo{
		HasNextPage:     paging.Next != "",
		HasPreviousPage: paging.Previous != "",
	}

	if paging.Cursors != nil {
		info.NextCursor = paging.Cursors.After
		info.PreviousCursor = paging.Cursors.Before
	}

	return info
}

// TransformAudiences descarta públicos sem nome
func TransformAudiences(audiences []metadomain.Audience) []domain.Audience {
	result := make([]domain.Audience, 0, len(audiences))
	for _, audience := range audiences {
		if audience.Name == "" {
			continue
		}

		result = append(result, domain.Audience{
			ID:               audience.ID,
			Name:             audience.Name,
			Subtype:          audience.Subtype,
			ApproximateCount: audience.ApproximateCountLowerBound,
		})
	}
	return result
}

func TransformAdAccount(account metadomain.AdAccount) domain.AdAccount {
	adAccount := domain.AdAccount{
		ID:            account.ID,
		AccountID:     account.AccountID,
		Name:          account.Name,
		AccountStatus: account.AccountStatus,
		Currency:      account.Currency,
		Balance:       account.Balance,
	}

	if account.Business != nil {
		adAccount.BusinessID = account.Business.ID
	}

	return adAccount
}
