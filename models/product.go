package models

// Product is the common shape every lookup source is normalized into.
// Immutable once built from a source response; a later lookup for the
// same barcode fully replaces the cached copy.
type Product struct {
	ID          string           `json:"id"`
	Barcode     string           `json:"barcode"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand,omitempty"`
	Description string           `json:"description,omitempty"`
	Ingredients []string         `json:"ingredients"`
	Allergens   []string         `json:"allergens"`
	ImageURL    string           `json:"image_url,omitempty"`
	NutriScore  string           `json:"nutri_score,omitempty"` // A..E
	Nutrition   *NutritionalInfo `json:"nutrition,omitempty"`
}

// NutritionalInfo holds per-100g nutrition facts when a source reports them.
type NutritionalInfo struct {
	Calories      float64 `json:"calories,omitempty"`
	Fat           float64 `json:"fat,omitempty"`
	SaturatedFat  float64 `json:"saturated_fat,omitempty"`
	Carbohydrates float64 `json:"carbohydrates,omitempty"`
	Sugars        float64 `json:"sugars,omitempty"`
	Proteins      float64 `json:"proteins,omitempty"`
	Salt          float64 `json:"salt,omitempty"`
	Fiber         float64 `json:"fiber,omitempty"`
}

type ScanStatus string

const (
	ScanSuccess           ScanStatus = "SUCCESS"
	ScanNotFound          ScanStatus = "NOT_FOUND"
	ScanNetworkError      ScanStatus = "NETWORK_ERROR"
	ScanContainsAllergens ScanStatus = "CONTAINS_ALLERGENS"
)

// ScanResult is what a barcode resolution yields. Exactly one variant is
// populated: Product on SUCCESS/CONTAINS_ALLERGENS, Message otherwise.
// Warnings is non-empty only for CONTAINS_ALLERGENS.
type ScanResult struct {
	Status   ScanStatus `json:"status"`
	Product  *Product   `json:"product,omitempty"`
	Warnings []string   `json:"allergen_warnings,omitempty"`
	Message  string     `json:"message,omitempty"`
}
