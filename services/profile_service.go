package services

import (
	"encoding/json"
	"strings"

	"github.com/sultumov/AllergyTrackerr/locales"
)

// ProfileService owns the user's allergen list: an ordered set of free-text
// names, mutated only by explicit add/remove and persisted as one record.
type ProfileService struct {
	store RecordStore
}

func NewProfileService(store RecordStore) *ProfileService {
	return &ProfileService{store: store}
}

// GetAllergens returns the user's allergen list. The first read ever seeds
// a locale-specific two-item default and persists it, so a new profile is
// not empty.
func (s *ProfileService) GetAllergens(userID uint, locale string) ([]string, error) {
	raw, ok, err := s.store.Get(userID, RecordAllergens)
	if err != nil {
		return nil, err
	}
	if !ok {
		defaults := locales.DefaultAllergens(locale)
		if err := s.saveAllergens(userID, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	var allergens []string
	if err := json.Unmarshal([]byte(raw), &allergens); err != nil {
		// Malformed stored data falls back to an empty list.
		return []string{}, nil
	}
	return allergens, nil
}

// AddAllergen appends an allergen unless it is already present
// (case-insensitive).
func (s *ProfileService) AddAllergen(userID uint, locale, allergen string) ([]string, error) {
	allergen = strings.TrimSpace(allergen)
	if allergen == "" {
		return s.GetAllergens(userID, locale)
	}

	current, err := s.GetAllergens(userID, locale)
	if err != nil {
		return nil, err
	}
	for _, a := range current {
		if strings.EqualFold(a, allergen) {
			return current, nil
		}
	}
	updated := append(current, allergen)
	if err := s.saveAllergens(userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveAllergen deletes an allergen by case-insensitive name match.
func (s *ProfileService) RemoveAllergen(userID uint, locale, allergen string) ([]string, error) {
	current, err := s.GetAllergens(userID, locale)
	if err != nil {
		return nil, err
	}
	updated := make([]string, 0, len(current))
	for _, a := range current {
		if !strings.EqualFold(a, strings.TrimSpace(allergen)) {
			updated = append(updated, a)
		}
	}
	if err := s.saveAllergens(userID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// SetAllergens replaces the whole list.
func (s *ProfileService) SetAllergens(userID uint, allergens []string) error {
	cleaned := make([]string, 0, len(allergens))
	for _, a := range allergens {
		if t := strings.TrimSpace(a); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return s.saveAllergens(userID, cleaned)
}

func (s *ProfileService) saveAllergens(userID uint, allergens []string) error {
	raw, err := json.Marshal(allergens)
	if err != nil {
		return err
	}
	return s.store.Put(userID, RecordAllergens, string(raw))
}
