package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"
)

// BarcodeListService queries the Russian barcode registry (barcode-list.ru).
// Consulted first for barcodes carrying the 46x country prefix.
type BarcodeListService struct {
	baseURL string
	client  *http.Client
}

func NewBarcodeListService() *BarcodeListService {
	return &BarcodeListService{
		baseURL: "https://barcode-list.ru",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewBarcodeListServiceWithBase substitutes the endpoint and client, used by tests.
func NewBarcodeListServiceWithBase(baseURL string, client *http.Client) *BarcodeListService {
	return &BarcodeListService{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *BarcodeListService) Name() string { return "barcode-list.ru" }

type barcodeListResponse struct {
	Status   string               `json:"status"`
	Message  string               `json:"message"`
	Products []barcodeListProduct `json:"products"`
}

type barcodeListProduct struct {
	Barcode     string   `json:"barcode"`
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Ingredients string   `json:"ingredients"` // comma-separated free text
	Allergens   []string `json:"allergens"`
}

func (s *BarcodeListService) Lookup(ctx context.Context, barcode string) (*models.Product, error) {
	u := fmt.Sprintf("%s/api/v1/barcode/?barcode=%s", s.baseURL, url.QueryEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create barcode-list request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call barcode-list API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read barcode-list response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("barcode-list API error %d: %s", resp.StatusCode, string(body))
	}

	var br barcodeListResponse
	if err := json.Unmarshal(body, &br); err != nil {
		return nil, fmt.Errorf("failed to parse barcode-list JSON: %w", err)
	}

	// A successful HTTP response without a product body is a miss, not an error.
	if br.Status != "success" || len(br.Products) == 0 {
		return nil, ErrProductNotFound
	}

	return mapBarcodeListProduct(br.Products[0]), nil
}

func mapBarcodeListProduct(p barcodeListProduct) *models.Product {
	var ingredients []string
	for _, part := range strings.Split(p.Ingredients, ",") {
		if t := strings.TrimSpace(part); t != "" {
			ingredients = append(ingredients, t)
		}
	}
	allergens := p.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	if ingredients == nil {
		ingredients = []string{}
	}
	return &models.Product{
		ID:          p.Barcode,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Ingredients: ingredients,
		Allergens:   allergens,
		ImageURL:    p.Image,
	}
}
