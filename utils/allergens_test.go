package utils

import (
	"testing"

	"github.com/sultumov/AllergyTrackerr/models"

	"github.com/stretchr/testify/assert"
)

func TestFindAllergenWarningsEmptyProfile(t *testing.T) {
	product := &models.Product{
		Allergens:   []string{"milk"},
		Ingredients: []string{"milk", "sugar"},
	}

	assert.Empty(t, FindAllergenWarnings(product, nil))
	assert.Empty(t, FindAllergenWarnings(product, []string{}))
}

func TestFindAllergenWarningsIngredientOnlyProduct(t *testing.T) {
	// Sources that declare no allergens still get their ingredient list
	// scanned; one warning per user allergen found there.
	product := &models.Product{
		Allergens:   []string{},
		Ingredients: []string{"contains trace peanut"},
	}

	warnings := FindAllergenWarnings(product, []string{"peanut"})
	assert.Equal(t, []string{
		"May contain allergen in ingredients: peanut (found in 'contains trace peanut')",
	}, warnings)
}

func TestFindAllergenWarningsNilProduct(t *testing.T) {
	assert.Empty(t, FindAllergenWarnings(nil, []string{"milk"}))
}

func TestFindAllergenWarningsDeclaredMatch(t *testing.T) {
	product := &models.Product{
		Allergens: []string{"milk", "soy"},
	}

	warnings := FindAllergenWarnings(product, []string{"milk"})
	assert.Equal(t, []string{"Contains allergen: milk"}, warnings)
}

func TestFindAllergenWarningsSubstringBothDirections(t *testing.T) {
	// Declared allergen contains the user allergen.
	product := &models.Product{Allergens: []string{"dairy milk protein"}}
	warnings := FindAllergenWarnings(product, []string{"milk"})
	assert.Equal(t, []string{"Contains allergen: dairy milk protein"}, warnings)

	// User allergen contains the declared allergen.
	product = &models.Product{Allergens: []string{"milk"}}
	warnings = FindAllergenWarnings(product, []string{"cow milk"})
	assert.Equal(t, []string{"Contains allergen: milk"}, warnings)
}

func TestFindAllergenWarningsCaseInsensitive(t *testing.T) {
	product := &models.Product{Allergens: []string{"Milk"}}
	warnings := FindAllergenWarnings(product, []string{"MILK"})
	assert.Len(t, warnings, 1)
}

func TestFindAllergenWarningsOnePerDeclaredAllergen(t *testing.T) {
	// One declared allergen matching several user allergens yields a single
	// warning.
	product := &models.Product{Allergens: []string{"milk protein concentrate"}}
	warnings := FindAllergenWarnings(product, []string{"milk", "protein"})
	assert.Len(t, warnings, 1)
}

func TestFindAllergenWarningsIngredientScan(t *testing.T) {
	product := &models.Product{
		Allergens:   []string{"soy"},
		Ingredients: []string{"wheat flour", "peanut butter"},
	}

	warnings := FindAllergenWarnings(product, []string{"soy", "peanut"})
	assert.Equal(t, []string{
		"Contains allergen: soy",
		"May contain allergen in ingredients: peanut (found in 'peanut butter')",
	}, warnings)
}

func TestFindAllergenWarningsIngredientSkippedWhenAlreadyWarned(t *testing.T) {
	// "milk" already appears in the declared-allergen warning, so the
	// ingredient scan must not duplicate it.
	product := &models.Product{
		Allergens:   []string{"milk"},
		Ingredients: []string{"milk powder"},
	}

	warnings := FindAllergenWarnings(product, []string{"milk"})
	assert.Equal(t, []string{"Contains allergen: milk"}, warnings)
}

func TestFindAllergenWarningsUnrelatedProfile(t *testing.T) {
	product := &models.Product{
		Allergens:   []string{"gluten"},
		Ingredients: []string{"wheat flour", "water"},
	}

	assert.Empty(t, FindAllergenWarnings(product, []string{"milk", "peanuts"}))
}
