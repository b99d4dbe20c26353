package models

import "strings"

// Allergen is a read-only catalog entry; never mutated at runtime.
type Allergen struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Category         AllergenCategory `json:"category"`
	Description      string           `json:"description"`
	Symptoms         []string         `json:"symptoms"`
	Avoidance        []string         `json:"avoidance_recommendations"`
	RelatedAllergens []string         `json:"related_allergens,omitempty"`
	ScientificName   string           `json:"scientific_name,omitempty"`
}

type AllergenCategory string

const (
	CategoryFood     AllergenCategory = "food"
	CategoryPollen   AllergenCategory = "pollen"
	CategoryAnimal   AllergenCategory = "animal"
	CategoryInsect   AllergenCategory = "insect"
	CategoryDrug     AllergenCategory = "drug"
	CategoryMold     AllergenCategory = "mold"
	CategoryLatex    AllergenCategory = "latex"
	CategoryDust     AllergenCategory = "dust"
	CategoryChemical AllergenCategory = "chemical"
	CategoryOther    AllergenCategory = "other"
)

// ParseAllergenCategory maps free-form category strings onto the closed
// enumeration; anything unrecognized lands in "other".
func ParseAllergenCategory(s string) AllergenCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food":
		return CategoryFood
	case "pollen":
		return CategoryPollen
	case "animal":
		return CategoryAnimal
	case "insect":
		return CategoryInsect
	case "drug", "medication":
		return CategoryDrug
	case "mold", "fungus":
		return CategoryMold
	case "latex":
		return CategoryLatex
	case "dust":
		return CategoryDust
	case "chemical":
		return CategoryChemical
	default:
		return CategoryOther
	}
}
