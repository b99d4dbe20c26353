package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sultumov/AllergyTrackerr/logger"
	"github.com/sultumov/AllergyTrackerr/models"

	"go.uber.org/zap"
)

// RecipeService searches allergen-safe recipes through a Spoonacular-style
// API. When the API is unconfigured or unavailable it serves a curated
// built-in set filtered locally, so the recipes screen always has content.
type RecipeService struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	fallback []models.Recipe
}

func NewRecipeService() *RecipeService {
	return &RecipeService{
		baseURL:  "https://api.spoonacular.com",
		apiKey:   os.Getenv("SPOONACULAR_API_KEY"),
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: placeholderRecipes(),
	}
}

// NewRecipeServiceWithBase substitutes the endpoint and client, used by tests.
func NewRecipeServiceWithBase(baseURL, apiKey string, client *http.Client) *RecipeService {
	return &RecipeService{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		client:   client,
		fallback: placeholderRecipes(),
	}
}

type recipeSearchResponse struct {
	Results []struct {
		ID                  int64    `json:"id"`
		Title               string   `json:"title"`
		Image               string   `json:"image"`
		Servings            int      `json:"servings"`
		ReadyInMinutes      int      `json:"readyInMinutes"`
		SourceURL           string   `json:"sourceUrl"`
		Summary             string   `json:"summary"`
		Cuisines            []string `json:"cuisines"`
		DishTypes           []string `json:"dishTypes"`
		Diets               []string `json:"diets"`
		Instructions        string   `json:"instructions"`
		ExtendedIngredients []struct {
			Original string `json:"original"`
		} `json:"extendedIngredients"`
	} `json:"results"`
}

// Search returns recipes matching the query that avoid the given
// intolerances and excluded ingredients.
func (s *RecipeService) Search(ctx context.Context, query string, intolerances, excludeIngredients []string) []models.Recipe {
	if s.apiKey == "" {
		return filterRecipes(s.fallback, query, excludeIngredients)
	}

	recipes, err := s.search(ctx, query, intolerances, excludeIngredients)
	if err != nil {
		logger.Warn("recipe search failed, serving built-in recipes", zap.Error(err))
		return filterRecipes(s.fallback, query, excludeIngredients)
	}
	return recipes
}

func (s *RecipeService) search(ctx context.Context, query string, intolerances, excludeIngredients []string) ([]models.Recipe, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", "10")
	params.Set("instructionsRequired", "true")
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("apiKey", s.apiKey)
	if len(intolerances) > 0 {
		params.Set("intolerances", strings.Join(intolerances, ","))
	}
	if len(excludeIngredients) > 0 {
		params.Set("excludeIngredients", strings.Join(excludeIngredients, ","))
	}

	u := fmt.Sprintf("%s/recipes/complexSearch?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe API error %d: %s", resp.StatusCode, string(body))
	}

	var rr recipeSearchResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("failed to parse recipe JSON: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(rr.Results))
	for _, r := range rr.Results {
		ingredients := make([]string, 0, len(r.ExtendedIngredients))
		for _, ing := range r.ExtendedIngredients {
			ingredients = append(ingredients, ing.Original)
		}
		recipes = append(recipes, models.Recipe{
			ID:             r.ID,
			Title:          r.Title,
			Image:          r.Image,
			Servings:       r.Servings,
			ReadyInMinutes: r.ReadyInMinutes,
			SourceURL:      r.SourceURL,
			Summary:        r.Summary,
			Cuisines:       r.Cuisines,
			DishTypes:      r.DishTypes,
			Diets:          r.Diets,
			Instructions:   r.Instructions,
			Ingredients:    ingredients,
		})
	}
	return recipes, nil
}

// filterRecipes applies the query and ingredient exclusions to the built-in
// set with case-insensitive substring matching.
func filterRecipes(recipes []models.Recipe, query string, excludeIngredients []string) []models.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Recipe{}

	for _, r := range recipes {
		if q != "" && !strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Summary), q) {
			continue
		}
		if recipeUsesAny(r, excludeIngredients) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func recipeUsesAny(r models.Recipe, excluded []string) bool {
	for _, ex := range excluded {
		e := strings.ToLower(strings.TrimSpace(ex))
		if e == "" {
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), e) {
				return true
			}
		}
	}
	return false
}

// Curated allergen-friendly recipes shown when the remote API is not available.
func placeholderRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:             1001,
			Title:          "Oatmeal with fruit",
			Servings:       2,
			ReadyInMinutes: 15,
			Summary:        "A wholesome breakfast free of the most common allergens",
			Cuisines:       []string{"Healthy"},
			DishTypes:      []string{"Breakfast"},
			Diets:          []string{"Vegetarian", "Gluten free"},
			Instructions:   "1. Bring 2 cups of water to a boil\n2. Add 1 cup of oats\n3. Simmer for 5 minutes, stirring\n4. Top with chopped fruit",
			Ingredients: []string{
				"Gluten-free oats - 1 cup",
				"Water - 2 cups",
				"Apple - 1",
				"Pear - 1",
				"Honey - to taste",
			},
		},
		{
			ID:             1002,
			Title:          "Rice with vegetables",
			Servings:       4,
			ReadyInMinutes: 30,
			Summary:        "A simple, safe main dish for people with food allergies",
			Cuisines:       []string{"Vegetarian"},
			DishTypes:      []string{"Main course"},
			Diets:          []string{"Vegetarian", "Gluten free", "Dairy free"},
			Instructions:   "1. Rinse the rice until the water runs clear\n2. Cook in salted water for 20 minutes\n3. Chop and saute the vegetables\n4. Mix the rice with the vegetables",
			Ingredients: []string{
				"Rice - 2 cups",
				"Carrot - 2",
				"Bell pepper - 1",
				"Green peas - 100g",
				"Olive oil - 2 tbsp",
				"Salt - to taste",
			},
		},
		{
			ID:             1003,
			Title:          "Baked apples with cinnamon",
			Servings:       4,
			ReadyInMinutes: 40,
			Summary:        "A simple dessert without the major allergens",
			Cuisines:       []string{"Desserts"},
			DishTypes:      []string{"Dessert"},
			Diets:          []string{"Vegetarian", "Gluten free", "Dairy free"},
			Instructions:   "1. Core the apples\n2. Fill with honey and cinnamon\n3. Bake at 180C for 30 minutes",
			Ingredients: []string{
				"Apples - 4",
				"Honey - 2 tbsp",
				"Cinnamon - 1 tsp",
			},
		},
	}
}
