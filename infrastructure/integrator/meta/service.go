package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	insightsFields = "spend,impressions,clicks,reach,cpc,cpm,ctr,cpp,frequency,actions,cost_per_action_type,date_start,date_stop"

	campaignFields = "id,name,status,effective_status,objective,daily_budget,lifetime_budget,budget_remaining," +
		"start_time,stop_time,created_time,updated_time,insights{" + insightsFields + "}"

	adSetFields = "id,name,status,effective_status,campaign_id,daily_budget,lifetime_budget,budget_remaining," +
		"start_time,end_time,created_time,updated_time,optimization_goal,billing_event,bid_amount,targeting," +
		"insights{" + insightsFields + "}"

	adFields = "id,name,status,effective_status,adset_id,campaign_id,created_time,updated_time," +
		"creative{id,name,title,body,image_url,thumbnail_url,effective_object_story_id}," +
		"insights{" + insightsFields + "}"

	audienceFields = "id,name,subtype,approximate_count_lower_bound,approximate_count_upper_bound"
	audienceLimit  = 200

	adSetEditFields = "id,name,daily_budget,campaign_id,targeting"

	adAccountFields = "id,account_id,name,owner,account_status,balance,currency,business{id}"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks
type Integrator interface {
	ListCampaigns(ctx context.Context, accessToken, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Campaign], error)
	ListAdSets(ctx context.Context, accessToken, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.AdSet], error)
	ListAds(ctx context.Context, accessToken, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Ad], error)
	ListAudiences(ctx context.Context, accessToken, accountID string) ([]domain.Audience, error)
	UpdateStatus(ctx context.Context, accessToken, entityID, status string) error
	GetInsights(ctx context.Context, accessToken, entityID string, filters domain.InsightsFilters) ([]domain.InsightsMetrics, error)
	GetAdSetForEdit(ctx context.Context, accessToken, adSetID string) (*metadomain.AdSet, error)
	UpdateAdSet(ctx context.Context, accessToken, adSetID string, changes url.Values) error
	GetUserAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error)
}

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

// graphFilter é um item do parâmetro filtering do Graph
type graphFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, accessToken, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Campaign], error) {
	params, err := listParams(campaignFields, filters, "")
	if err != nil {
		return nil, err
	}

	var response metadomain.ListResponse[metadomain.Campaign]
	if err := s.get(ctx, accessToken, accountID+"/campaigns", params, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("campaigns: failed to list campaigns from API")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(response.Data))
	for _, campaign := range response.Data {
		campaigns = append(campaigns, TransformCampaign(campaign))
	}

	return &domain.ListResult[domain.Campaign]{
		Data:       campaigns,
		Pagination: TransformPaging(response.Paging),
	}, nil
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, accessToken, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.AdSet], error) {
	params, err := listParams(adSetFields, filters, "campaign.id")
	if err != nil {
		return nil, err
	}

	var response metadomain.ListResponse[metadomain.AdSet]
	if err := s.get(ctx, accessToken, accountID+"/adsets", params, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": filters.ParentID,
			"error":       err.Error(),
		}).Error("adsets: failed to list ad sets from API")
		return nil, err
	}

	adSets := make([]domain.AdSet, 0, len(response.Data))
	for _, adSet := range response.Data {
		adSets = append(adSets, TransformAdSet(adSet))
	}

	return &domain.ListResult[domain.AdSet]{
		Data:       adSets,
		Pagination: TransformPaging(response.Paging),
	}, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, accessToken, accountID string, filters domain.ListFilters) (*domain.ListResult[domain.Ad], error) {
	params, err := listParams(adFields, filters, "adset.id")
	if err != nil {
		return nil, err
	}

	var response metadomain.ListResponse[metadomain.Ad]
	if err := s.get(ctx, accessToken, accountID+"/ads", params, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"adset_id":   filters.ParentID,
			"error":      err.Error(),
		}).Error("ads: failed to list ads from API")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(response.Data))
	for _, ad := range response.Data {
		ads = append(ads, TransformAd(ad))
	}

	return &domain.ListResult[domain.Ad]{
		Data:       ads,
		Pagination: TransformPaging(response.Paging),
	}, nil
}

func (s *MetaIntegrator) ListAudiences(ctx context.Context, accessToken, accountID string) ([]domain.Audience, error) {
	params := url.Values{}
	params.Set("fields", audienceFields)
	params.Set("limit", strconv.Itoa(audienceLimit))

	var response metadomain.ListResponse[metadomain.Audience]
	if err := s.get(ctx, accessToken, accountID+"/customaudiences", params, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("audiences: failed to list custom audiences from API")
		return nil, err
	}

	return TransformAudiences(response.Data), nil
}

// UpdateStatus envia o status como parâmetro de query, sem corpo
func (s *MetaIntegrator) UpdateStatus(ctx context.Context, accessToken, entityID, status string) error {
	params := url.Values{}
	params.Set("status", status)

	_, err := s.Client.Call(ctx, metaclient.Request{
		Method:      http.MethodPost,
		Path:        entityID,
		Params:      params,
		AccessToken: accessToken,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"status":    status,
			"error":     err.Error(),
		}).Error("status: failed to update entity status")
		return err
	}

	return nil
}

func (s *MetaIntegrator) GetInsights(ctx context.Context, accessToken, entityID string, filters domain.InsightsFilters) ([]domain.InsightsMetrics, error) {
	params, err := insightsParams(filters)
	if err != nil {
		return nil, err
	}

	var response metadomain.InsightsEnvelope
	if err := s.get(ctx, accessToken, entityID+"/insights", params, &response); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"error":     err.Error(),
		}).Error("insights: failed to get insights from API")
		return nil, err
	}

	rows := make([]domain.InsightsMetrics, 0, len(response.Data))
	for _, row := range response.Data {
		rows = append(rows, TransformInsightsRow(row))
	}

	return rows, nil
}

// GetAdSetForEdit devolve o ad set cru, com o targeting completo como veio do Graph
func (s *MetaIntegrator) GetAdSetForEdit(ctx context.Context, accessToken, adSetID string) (*metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", adSetEditFields)

	var adSet metadomain.AdSet
	if err := s.get(ctx, accessToken, adSetID, params, &adSet); err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"error":    err.Error(),
		}).Error("adset edit: failed to fetch current ad set")
		return nil, err
	}

	return &adSet, nil
}

// UpdateAdSet envia apenas os campos alterados no corpo do POST
func (s *MetaIntegrator) UpdateAdSet(ctx context.Context, accessToken, adSetID string, changes url.Values) error {
	_, err := s.Client.Call(ctx, metaclient.Request{
		Method:      http.MethodPost,
		Path:        adSetID,
		Body:        changes,
		AccessToken: accessToken,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"error":    err.Error(),
		}).Error("adset edit: failed to apply changes")
		return err
	}

	return nil
}

func (s *MetaIntegrator) GetUserAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", fmt.Sprintf("id,name,adaccounts{%s}", adAccountFields))

	var response metadomain.UserWithAdAccounts
	if err := s.get(ctx, accessToken, "me", params, &response); err != nil {
		logrus.WithError(err).Error("accounts: failed to get user ad accounts")
		return nil, err
	}

	accounts := make([]domain.AdAccount, 0)
	if response.AdAccounts == nil {
		return accounts, nil
	}

	for _, account := range response.AdAccounts.Data {
		accounts = append(accounts, TransformAdAccount(account))
	}

	return accounts, nil
}

func (s *MetaIntegrator) get(ctx context.Context, accessToken, path string, params url.Values, out any) error {
	body, err := s.Client.Call(ctx, metaclient.Request{
		Method:      http.MethodGet,
		Path:        path,
		Params:      params,
		AccessToken: accessToken,
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return metadomain.NewGraphAPIError(metadomain.GraphErrorReturn{
			StatusCode: metadomain.GenericError.HTTPStatusCode,
			Reason:     metadomain.GenericError,
		}, fmt.Errorf("meta: decode %s: %w", path, err))
	}

	return nil
}

// listParams monta fields, paginação, effective_status e o filtro por entidade pai
func listParams(fields string, filters domain.ListFilters, parentField string) (url.Values, error) {
	params := url.Values{}
	params.Set("fields", fields)
	params.Set("limit", strconv.Itoa(filters.Limit))

	if filters.After != "" {
		params.Set("after", filters.After)
	}
	if filters.Before != "" {
		params.Set("before", filters.Before)
	}

	if parentField != "" && filters.ParentID != "" {
		filtering, err := json.Marshal([]graphFilter{{Field: parentField, Operator: "EQUAL", Value: filters.ParentID}})
		if err != nil {
			return nil, err
		}
		params.Set("filtering", string(filtering))
	}

	if len(filters.EffectiveStatus) > 0 {
		statuses, err := json.Marshal(filters.EffectiveStatus)
		if err != nil {
			return nil, err
		}
		params.Set("effective_status", string(statuses))
	}

	return params, nil
}

// insightsParams: date_preset tem precedência; time_range só com since e until
func insightsParams(filters domain.InsightsFilters) (url.Values, error) {
	params := url.Values{}
	params.Set("fields", insightsFields)

	if filters.DatePreset != "" {
		params.Set("date_preset", filters.DatePreset)
	} else if filters.Since != "" && filters.Until != "" {
		timeRange, err := json.Marshal(map[string]string{"since": filters.Since, "until": filters.Until})
		if err != nil {
			return nil, err
		}
		params.Set("time_range", string(timeRange))
	}

	if strings.TrimSpace(filters.TimeIncrement) != "" {
		params.Set("time_increment", filters.TimeIncrement)
	}

	return params, nil
}
