package services

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/sultumov/AllergyTrackerr/logger"
	"github.com/sultumov/AllergyTrackerr/models"

	"go.uber.org/zap"
)

// CatalogService serves the read-only allergen reference data. Entries are
// loaded once from a JSON asset; a malformed or missing asset falls back to
// a small built-in list per category rather than failing.
type CatalogService struct {
	entries []models.Allergen
}

type catalogFile struct {
	Categories []struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Allergens []struct {
			ID             string   `json:"id"`
			Name           string   `json:"name"`
			Description    string   `json:"description"`
			Symptoms       []string `json:"symptoms"`
			Avoidance      []string `json:"avoidanceRecommendations"`
			ScientificName string   `json:"scientificName"`
			Related        []string `json:"relatedAllergens"`
		} `json:"allergens"`
	} `json:"categories"`
}

func NewCatalogService(assetPath string) *CatalogService {
	entries, err := loadCatalogAsset(assetPath)
	if err != nil {
		logger.Warn("failed to load allergen catalog asset, using built-in defaults",
			zap.String("path", assetPath), zap.Error(err))
		entries = defaultCatalog()
	}
	return &CatalogService{entries: entries}
}

func loadCatalogAsset(path string) ([]models.Allergen, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	var entries []models.Allergen
	for _, cat := range file.Categories {
		category := models.ParseAllergenCategory(cat.ID)
		for _, a := range cat.Allergens {
			entry := models.Allergen{
				ID:               a.ID,
				Name:             a.Name,
				Category:         category,
				Description:      a.Description,
				Symptoms:         a.Symptoms,
				Avoidance:        a.Avoidance,
				RelatedAllergens: a.Related,
				ScientificName:   a.ScientificName,
			}
			if entry.Symptoms == nil {
				entry.Symptoms = []string{}
			}
			if entry.Avoidance == nil {
				entry.Avoidance = []string{}
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// All returns every catalog entry.
func (s *CatalogService) All() []models.Allergen {
	return s.entries
}

// ByCategory filters entries by their closed-enum category.
func (s *CatalogService) ByCategory(category models.AllergenCategory) []models.Allergen {
	out := []models.Allergen{}
	for _, e := range s.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Search matches a case-insensitive substring against name and scientific name.
func (s *CatalogService) Search(query string) []models.Allergen {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Allergen{}
	if q == "" {
		return out
	}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			(e.ScientificName != "" && strings.Contains(strings.ToLower(e.ScientificName), q)) {
			out = append(out, e)
		}
	}
	return out
}

// ByID looks an entry up by its identifier.
func (s *CatalogService) ByID(id string) *models.Allergen {
	for _, e := range s.entries {
		if e.ID == id {
			found := e
			return &found
		}
	}
	return nil
}

// Categories lists the categories present in the catalog, in first-seen order.
func (s *CatalogService) Categories() []models.AllergenCategory {
	seen := map[models.AllergenCategory]bool{}
	out := []models.AllergenCategory{}
	for _, e := range s.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

func defaultCatalog() []models.Allergen {
	return []models.Allergen{
		{ID: "milk", Name: "Milk", Category: models.CategoryFood,
			Description: "Allergy to cow's milk proteins",
			Symptoms:    []string{"Hives", "Digestive problems"},
			Avoidance:   []string{"Avoid dairy products", "Check labels for casein and whey"}},
		{ID: "peanut", Name: "Peanut", Category: models.CategoryFood,
			Description: "Allergy to peanuts", ScientificName: "Arachis hypogaea",
			Symptoms:  []string{"Anaphylaxis", "Hives", "Swelling"},
			Avoidance: []string{"Avoid peanuts and peanut oil", "Carry an epinephrine auto-injector"}},
		{ID: "egg", Name: "Egg", Category: models.CategoryFood,
			Description: "Allergy to egg proteins",
			Symptoms:    []string{"Skin reactions", "Respiratory problems"},
			Avoidance:   []string{"Avoid eggs", "Check baked goods and vaccines"}},
		{ID: "birch_pollen", Name: "Birch pollen", Category: models.CategoryPollen,
			Description: "Seasonal allergy to birch pollen", ScientificName: "Betula",
			Symptoms:  []string{"Sneezing", "Itchy eyes"},
			Avoidance: []string{"Stay indoors on high-pollen days"}},
		{ID: "ragweed_pollen", Name: "Ragweed pollen", Category: models.CategoryPollen,
			Description: "Seasonal allergy to ragweed pollen", ScientificName: "Ambrosia",
			Symptoms:  []string{"Runny nose", "Congestion"},
			Avoidance: []string{"Keep windows closed in late summer"}},
		{ID: "cat_dander", Name: "Cat dander", Category: models.CategoryAnimal,
			Description: "Allergy to cats",
			Symptoms:    []string{"Sneezing", "Asthma symptoms"},
			Avoidance:   []string{"Limit contact with cats", "Use HEPA filtration"}},
		{ID: "dog_dander", Name: "Dog dander", Category: models.CategoryAnimal,
			Description: "Allergy to dogs",
			Symptoms:    []string{"Sneezing", "Itchy skin"},
			Avoidance:   []string{"Limit contact with dogs"}},
		{ID: "penicillin", Name: "Penicillin", Category: models.CategoryDrug,
			Description: "Allergy to penicillin antibiotics",
			Symptoms:    []string{"Rash", "Anaphylaxis"},
			Avoidance:   []string{"Inform every prescriber", "Wear a medical alert bracelet"}},
	}
}
