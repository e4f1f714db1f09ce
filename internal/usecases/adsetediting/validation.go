package adsetediting

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/meta-backoffice-api/internal/domain"
)

// ValidateRequest verifica o corpo da edição antes de qualquer chamada externa
func ValidateRequest(req *domain.EditAdSetRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return validationError(
			"Missing userId",
			"userId is required in the request body",
			"Provide userId to identify which user's token to use",
		)
	}

	if strings.TrimSpace(req.Note) == "" {
		return validationError(
			"Missing note",
			"A note explaining the change is required",
			"Provide a note to explain why this change is being made",
		)
	}

	if req.DailyBudget == nil && !req.Targeting.HasChanges() {
		return validationError(
			"No changes provided",
			"At least one of dailyBudget or targeting must be provided",
			"Provide dailyBudget and/or targeting fields to update",
		)
	}

	if req.DailyBudget != nil && !validBudget(*req.DailyBudget) {
		return validationError(
			"Invalid dailyBudget",
			fmt.Sprintf("dailyBudget must be between 1 and %d", MaxDailyBudget),
			"Provide a daily budget in currency units, e.g. 50 for 50.00",
		)
	}

	if req.Targeting != nil {
		return validateTargeting(req.Targeting)
	}

	return nil
}

func validateTargeting(targeting *domain.EditTargetingRequest) error {
	for _, age := range []*int{targeting.AgeMin, targeting.AgeMax} {
		if age != nil && (*age < domain.MinTargetingAge || *age > domain.MaxTargetingAge) {
			return validationError(
				"Invalid age range",
				fmt.Sprintf("Ages must be between %d and %d", domain.MinTargetingAge, domain.MaxTargetingAge),
				"Adjust age_min and age_max to the allowed range",
			)
		}
	}

	if targeting.AgeMin != nil && targeting.AgeMax != nil {
		if err := validateAgeOrder(*targeting.AgeMin, *targeting.AgeMax); err != nil {
			return err
		}
	}

	if targeting.Genders != nil {
		for _, gender := range *targeting.Genders {
			if gender != domain.GenderMale && gender != domain.GenderFemale {
				return validationError(
					"Invalid genders",
					"genders may only contain 1 (male) and 2 (female)",
					"Send an empty list to target all genders",
				)
			}
		}
	}

	for _, audiences := range []*[]domain.AudienceRef{targeting.CustomAudiences, targeting.ExcludedCustomAudiences} {
		if audiences == nil {
			continue
		}
		for _, audience := range *audiences {
			if strings.TrimSpace(audience.ID) == "" {
				return validationError(
					"Invalid audience",
					"Every audience reference needs an id",
					"Select audiences from the account audience list",
				)
			}
		}
	}

	return nil
}

func validateAgeOrder(ageMin, ageMax int) error {
	if ageMin > ageMax {
		return validationError(
			"Invalid age range",
			"age_min cannot be greater than age_max",
			"Adjust age_min and age_max so that the minimum is not above the maximum",
		)
	}
	return nil
}

func validBudget(budget float64) bool {
	if math.IsNaN(budget) || math.IsInf(budget, 0) {
		return false
	}
	return budget >= 1 && budget <= MaxDailyBudget
}
