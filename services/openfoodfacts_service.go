package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"
)

// OpenFoodFactsService queries the worldwide Open Food Facts database,
// the fallback (and default) product source.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewOpenFoodFactsServiceWithBase substitutes the endpoint and client, used by tests.
func NewOpenFoodFactsServiceWithBase(baseURL string, client *http.Client) *OpenFoodFactsService {
	return &OpenFoodFactsService{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *OpenFoodFactsService) Name() string { return "openfoodfacts" }

type offResponse struct {
	Status  int         `json:"status"`
	Code    string      `json:"code"`
	Product *offProduct `json:"product"`
}

type offProduct struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Brands      string `json:"brands"`
	Ingredients []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"ingredients"`
	AllergensTags []string `json:"allergens_tags"`
	ImageURL      string   `json:"image_url"`
	NutriScore    string   `json:"nutrition_grades"`
	Nutriments    *struct {
		Proteins      float64 `json:"proteins"`
		Fat           float64 `json:"fat"`
		Carbohydrates float64 `json:"carbohydrates"`
		Sugars        float64 `json:"sugars"`
		Fiber         float64 `json:"fiber"`
		Salt          float64 `json:"salt"`
	} `json:"nutriments"`
}

func (s *OpenFoodFactsService) Lookup(ctx context.Context, barcode string) (*models.Product, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create openfoodfacts request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call openfoodfacts API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read openfoodfacts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts API error %d: %s", resp.StatusCode, string(body))
	}

	var pr offResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse openfoodfacts JSON: %w", err)
	}

	if pr.Status != 1 || pr.Product == nil {
		return nil, ErrProductNotFound
	}

	return mapOpenFoodFactsProduct(pr), nil
}

func mapOpenFoodFactsProduct(pr offResponse) *models.Product {
	p := pr.Product

	ingredients := make([]string, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		if t := strings.TrimSpace(ing.Text); t != "" {
			ingredients = append(ingredients, t)
		}
	}

	allergens := make([]string, 0, len(p.AllergensTags))
	for _, tag := range p.AllergensTags {
		if name := normalizeAllergenTag(tag); name != "" {
			allergens = append(allergens, name)
		}
	}

	name := p.ProductName
	if name == "" {
		name = "Unknown product"
	}

	var nutrition *models.NutritionalInfo
	if p.Nutriments != nil {
		nutrition = &models.NutritionalInfo{
			Proteins:      p.Nutriments.Proteins,
			Fat:           p.Nutriments.Fat,
			Carbohydrates: p.Nutriments.Carbohydrates,
			Sugars:        p.Nutriments.Sugars,
			Fiber:         p.Nutriments.Fiber,
			Salt:          p.Nutriments.Salt,
		}
	}

	return &models.Product{
		ID:          pr.Code,
		Barcode:     pr.Code,
		Name:        name,
		Brand:       p.Brands,
		Ingredients: ingredients,
		Allergens:   allergens,
		ImageURL:    p.ImageURL,
		NutriScore:  p.NutriScore,
		Nutrition:   nutrition,
	}
}

// normalizeAllergenTag turns tag-style identifiers like "en:cow-milk" into
// display names ("cow milk"): the locale prefix is stripped and hyphens
// become spaces.
func normalizeAllergenTag(tag string) string {
	name := tag
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}
