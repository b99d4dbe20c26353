package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sultumov/AllergyTrackerr/logger"
	"github.com/sultumov/AllergyTrackerr/models"
	"github.com/sultumov/AllergyTrackerr/utils"

	"go.uber.org/zap"
)

// Barcodes beginning with 460-469 are assigned to Russia, so those are
// tried against the regional registry before the global database.
const regionalBarcodePrefix = "46"

// ProductService is the resolution engine: cache-first barcode lookup over
// an ordered list of remote sources, with allergen matching applied to
// every resolved product. Sources are injected so tests can substitute
// fakes and a third source is a one-line change.
type ProductService struct {
	cache    *RecentProductsService
	regional ProductSource
	global   ProductSource
}

func NewProductService(cache *RecentProductsService, regional, global ProductSource) *ProductService {
	return &ProductService{cache: cache, regional: regional, global: global}
}

// Resolve determines product identity and allergen risk for a barcode.
// The cached copy, when present, is authoritative: no remote call is made
// and only matching is re-run, so warnings always reflect the user's
// current allergen list.
func (s *ProductService) Resolve(ctx context.Context, userID uint, barcode string, userAllergens []string) models.ScanResult {
	if cached := s.cache.Get(userID, barcode); cached != nil {
		return classifyProduct(cached, userAllergens)
	}

	var (
		sawNotFound bool
		lastErr     error
	)

	for _, src := range s.sourceOrder(barcode) {
		product, err := src.Lookup(ctx, barcode)
		if err == nil && product == nil {
			// A source breaking the Lookup contract is treated as a miss.
			logger.Warn("product source returned no product and no error",
				zap.String("source", src.Name()), zap.String("barcode", barcode))
			sawNotFound = true
			continue
		}
		if err == nil {
			result := classifyProduct(product, userAllergens)
			if err := s.cache.Put(userID, *product); err != nil {
				logger.Warn("failed to cache resolved product",
					zap.String("barcode", barcode), zap.Error(err))
			}
			if result.Status == models.ScanContainsAllergens {
				EmitAlert(userID, "allergen", barcode, strings.Join(result.Warnings, "; "))
			}
			return result
		}
		if errors.Is(err, ErrProductNotFound) {
			logger.Debug("product not found in source",
				zap.String("source", src.Name()), zap.String("barcode", barcode))
			sawNotFound = true
			continue
		}
		logger.Warn("product source failed",
			zap.String("source", src.Name()), zap.String("barcode", barcode), zap.Error(err))
		lastErr = err
	}

	// Prefer NotFound when any source explicitly reported absence, even if
	// another source errored.
	if sawNotFound {
		return models.ScanResult{
			Status:  models.ScanNotFound,
			Message: "No product with this barcode was found in any database",
		}
	}
	return models.ScanResult{
		Status:  models.ScanNetworkError,
		Message: fmt.Sprintf("Failed to fetch product data: %v", lastErr),
	}
}

// sourceOrder returns the query priority for a barcode: regional first for
// regional prefixes, otherwise the global database alone.
func (s *ProductService) sourceOrder(barcode string) []ProductSource {
	if strings.HasPrefix(barcode, regionalBarcodePrefix) {
		return []ProductSource{s.regional, s.global}
	}
	return []ProductSource{s.global}
}

func classifyProduct(product *models.Product, userAllergens []string) models.ScanResult {
	warnings := utils.FindAllergenWarnings(product, userAllergens)
	if len(warnings) > 0 {
		return models.ScanResult{
			Status:   models.ScanContainsAllergens,
			Product:  product,
			Warnings: warnings,
		}
	}
	return models.ScanResult{Status: models.ScanSuccess, Product: product}
}
