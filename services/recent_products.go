package services

import (
	"encoding/json"
	"strings"

	"github.com/sultumov/AllergyTrackerr/models"
)

// Bounded most-recent-first cache of resolved products, persisted as one
// JSON record per user. A cached entry never expires; only a fresh
// successful lookup for the same barcode replaces it.
const maxRecentProducts = 20

type RecentProductsService struct {
	store RecordStore
}

func NewRecentProductsService(store RecordStore) *RecentProductsService {
	return &RecentProductsService{store: store}
}

// List returns the cached products, newest first. Malformed or missing
// stored data yields an empty list rather than an error.
func (s *RecentProductsService) List(userID uint) []models.Product {
	raw, ok, err := s.store.Get(userID, RecordRecentProducts)
	if err != nil || !ok {
		return []models.Product{}
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return []models.Product{}
	}
	return products
}

// Get returns the cached product for a barcode (exact match), or nil.
func (s *RecentProductsService) Get(userID uint, barcode string) *models.Product {
	for _, p := range s.List(userID) {
		if p.Barcode == barcode {
			found := p
			return &found
		}
	}
	return nil
}

// Put moves the product to the front of the list, dropping any previous
// entry with the same barcode and truncating to the cap.
func (s *RecentProductsService) Put(userID uint, product models.Product) error {
	current := s.List(userID)

	updated := make([]models.Product, 0, len(current)+1)
	updated = append(updated, product)
	for _, p := range current {
		if p.Barcode != product.Barcode {
			updated = append(updated, p)
		}
	}
	if len(updated) > maxRecentProducts {
		updated = updated[:maxRecentProducts]
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return s.store.Put(userID, RecordRecentProducts, string(raw))
}

// Search filters the cached products by name or brand substring.
func (s *RecentProductsService) Search(userID uint, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Product{}
	if q == "" {
		return out
	}
	for _, p := range s.List(userID) {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out
}

// WithoutAllergen returns cached products whose declared allergens and
// ingredients do not mention the given allergen.
func (s *RecentProductsService) WithoutAllergen(userID uint, allergen string) []models.Product {
	a := strings.ToLower(strings.TrimSpace(allergen))
	out := []models.Product{}
	for _, p := range s.List(userID) {
		if a == "" || productMentions(p, a) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func productMentions(p models.Product, allergen string) bool {
	for _, decl := range p.Allergens {
		if strings.Contains(strings.ToLower(decl), allergen) {
			return true
		}
	}
	for _, ing := range p.Ingredients {
		if strings.Contains(strings.ToLower(ing), allergen) {
			return true
		}
	}
	return false
}
