package marketing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

const accountPrefix = "act_"

// ParseLimit nunca falha: valores ausentes, inválidos ou não positivos caem no padrão
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return domain.DefaultListLimit
	}

	if limit > domain.MaxListLimit {
		return domain.MaxListLimit
	}

	return limit
}

// NormalizeAccountID garante o prefixo act_ exigido pelo Graph
func NormalizeAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" || strings.HasPrefix(accountID, accountPrefix) {
		return accountID
	}
	return accountPrefix + accountID
}

// ParseStatuses separa a lista de effective_status enviada por vírgulas
func ParseStatuses(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	statuses := make([]string, 0)
	for _, status := range strings.Split(raw, ",") {
		if status = strings.TrimSpace(status); status != "" {
			statuses = append(statuses, status)
		}
	}
	return statuses
}

// ParseListFilters lê os parâmetros de paginação; parentKey é o filtro do pai (campaignId ou adsetId)
func ParseListFilters(query url.Values, parentKey string) domain.ListFilters {
	filters := domain.ListFilters{
		Limit:           ParseLimit(query.Get("limit")),
		After:           query.Get("after"),
		Before:          query.Get("before"),
		EffectiveStatus: ParseStatuses(query.Get("effectiveStatus")),
	}

	if parentKey != "" {
		filters.ParentID = strings.TrimSpace(query.Get(parentKey))
	}

	return filters
}

func ParseInsightsFilters(query url.Values) domain.InsightsFilters {
	return domain.InsightsFilters{
		DatePreset:    strings.TrimSpace(query.Get("datePreset")),
		Since:         strings.TrimSpace(query.Get("since")),
		Until:         strings.TrimSpace(query.Get("until")),
		TimeIncrement: strings.TrimSpace(query.Get("timeIncrement")),
	}
}
