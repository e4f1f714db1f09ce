package adsetediting

import (
	"math"
	"strconv"

	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

// MaxDailyBudget é o maior orçamento diário aceito, em unidades da moeda.
// Mantém o valor em centavos bem dentro de int64.
const MaxDailyBudget = 1_000_000_000

// BudgetToMinorUnits converte o orçamento em unidades da moeda para centavos.
// O valor precisa ter passado por ValidateRequest.
func BudgetToMinorUnits(budget float64) string {
	return strconv.FormatInt(int64(math.Round(budget*100)), 10)
}

// MergeTargeting sobrepõe os campos enviados ao targeting atual. A localização
// sempre vem do targeting atual e sem ela a edição é recusada.
func MergeTargeting(previous *domain.AdSetTargeting, req *domain.EditTargetingRequest) (domain.AdSetTargeting, error) {
	if previous == nil {
		previous = &domain.AdSetTargeting{}
	}

	if previous.GeoLocations.IsEmpty() {
		return domain.AdSetTargeting{}, validationError(
			"Missing geo_locations",
			"O conjunto de anúncios não possui localização geográfica configurada. A localização não pode ser alterada através desta interface.",
			"Configure a localização geográfica diretamente na Meta ou entre em contato com o suporte.",
		)
	}

	merged := domain.AdSetTargeting{
		GeoLocations: previous.GeoLocations.Clean(),
		AgeMin:       firstAge(req.AgeMin, previous.AgeMin, domain.DefaultTargetingMin),
		AgeMax:       firstAge(req.AgeMax, previous.AgeMax, domain.DefaultTargetingMax),
	}

	genders := previous.Genders
	if req.Genders != nil {
		genders = *req.Genders
	}
	if len(genders) > 0 {
		merged.Genders = genders
	}

	merged.CustomAudiences = mergeAudiences(req.CustomAudiences, previous.CustomAudiences)
	merged.ExcludedCustomAudiences = mergeAudiences(req.ExcludedCustomAudiences, previous.ExcludedCustomAudiences)

	if err := validateAgeOrder(*merged.AgeMin, *merged.AgeMax); err != nil {
		return domain.AdSetTargeting{}, err
	}

	return merged, nil
}

func firstAge(requested, previous *int, fallback int) *int {
	age := fallback
	switch {
	case requested != nil:
		age = *requested
	case previous != nil:
		age = *previous
	}
	return &age
}

func mergeAudiences(requested *[]domain.AudienceRef, previous []domain.AudienceRef) []domain.AudienceRef {
	audiences := previous
	if requested != nil {
		audiences = *requested
	}
	if len(audiences) == 0 {
		return nil
	}
	return audiences
}
