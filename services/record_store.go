package services

import (
	"errors"
	"sync"

	"github.com/sultumov/AllergyTrackerr/models"

	"gorm.io/gorm"
)

// RecordStore is the key-value preference storage behind the app's
// list-shaped state: one named JSON blob per (user, record name).
type RecordStore interface {
	Get(userID uint, name string) (string, bool, error)
	Put(userID uint, name, value string) error
}

// Record names used across services.
const (
	RecordAllergens      = "user_allergens"
	RecordRecentProducts = "recent_products"
	RecordMedications    = "medications"
	RecordReactions      = "saved_reactions"
)

type DBRecordStore struct{ db *gorm.DB }

func NewDBRecordStore(db *gorm.DB) *DBRecordStore { return &DBRecordStore{db: db} }

func (s *DBRecordStore) Get(userID uint, name string) (string, bool, error) {
	var rec models.PreferenceRecord
	err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *DBRecordStore) Put(userID uint, name, value string) error {
	var rec models.PreferenceRecord
	err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&rec).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rec = models.PreferenceRecord{UserID: userID, Name: name, Value: value}
		return s.db.Create(&rec).Error
	}
	rec.Value = value
	return s.db.Save(&rec).Error
}

// MemoryRecordStore backs tests and local development without a database.
type MemoryRecordStore struct {
	mu   sync.Mutex
	recs map[uint]map[string]string
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{recs: make(map[uint]map[string]string)}
}

func (s *MemoryRecordStore) Get(userID uint, name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.recs[userID][name]
	return v, ok, nil
}

func (s *MemoryRecordStore) Put(userID uint, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recs[userID] == nil {
		s.recs[userID] = make(map[string]string)
	}
	s.recs[userID][name] = value
	return nil
}
