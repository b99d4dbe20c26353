package models

// Recipe as returned by the recipe search API (or the built-in fallback set).
type Recipe struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image,omitempty"`
	Servings       int      `json:"servings"`
	ReadyInMinutes int      `json:"ready_in_minutes"`
	SourceURL      string   `json:"source_url,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
	DishTypes      []string `json:"dish_types,omitempty"`
	Diets          []string `json:"diets,omitempty"`
	Instructions   string   `json:"instructions,omitempty"`
	Ingredients    []string `json:"ingredients"`
}
