package utils

import (
	"fmt"
	"strings"

	"github.com/sultumov/AllergyTrackerr/models"
)

// FindAllergenWarnings cross-matches a product's declared allergens and
// ingredient list against the user's allergen profile and returns
// human-readable warnings in the order they were discovered.
//
// Matching is deliberately loose: case-insensitive substring containment in
// both directions ("milk" matches "dairy milk protein" and vice versa),
// since allergen vocabularies differ across sources and locales and missing
// a true allergen is the costlier error here.
func FindAllergenWarnings(product *models.Product, userAllergens []string) []string {
	if product == nil || len(userAllergens) == 0 {
		// A user with no declared allergies is never warned, even when
		// ingredients textually overlap with arbitrary catalog words.
		return []string{}
	}

	warnings := []string{}

	// Declared allergens first: one warning per declared allergen, no matter
	// how many user allergens it matches.
	for _, allergen := range product.Allergens {
		for _, userAllergen := range userAllergens {
			if containsFold(allergen, userAllergen) || containsFold(userAllergen, allergen) {
				warnings = append(warnings, fmt.Sprintf("Contains allergen: %s", allergen))
				break
			}
		}
	}

	// Then scan free-text ingredients for user allergens not already covered
	// by a declared-allergen warning.
	for _, ingredient := range product.Ingredients {
		for _, userAllergen := range userAllergens {
			if containsFold(ingredient, userAllergen) && !anyWarningMentions(warnings, userAllergen) {
				warnings = append(warnings,
					fmt.Sprintf("May contain allergen in ingredients: %s (found in '%s')", userAllergen, ingredient))
				break
			}
		}
	}

	return warnings
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyWarningMentions(warnings []string, allergen string) bool {
	for _, w := range warnings {
		if containsFold(w, allergen) {
			return true
		}
	}
	return false
}
