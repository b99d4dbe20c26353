package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sultumov/AllergyTrackerr/config"
	"github.com/sultumov/AllergyTrackerr/logger"
	"github.com/sultumov/AllergyTrackerr/models"
	"github.com/sultumov/AllergyTrackerr/utils"

	"go.uber.org/zap"
)

// ReminderService manages medication reminders: CRUD over the user's
// medications record plus computation of upcoming doses. Due doses are
// delivered through the alert bus (push + websocket).
type ReminderService struct {
	store RecordStore
}

func NewReminderService(store RecordStore) *ReminderService {
	return &ReminderService{store: store}
}

// UpcomingDose is one scheduled intake in the next 24 hours.
type UpcomingDose struct {
	Medication models.Medication `json:"medication"`
	At         time.Time         `json:"at"`
}

// List returns the user's medications. Malformed or missing stored data
// yields an empty list.
func (s *ReminderService) List(userID uint) []models.Medication {
	raw, ok, err := s.store.Get(userID, RecordMedications)
	if err != nil || !ok {
		return []models.Medication{}
	}
	var meds []models.Medication
	if err := json.Unmarshal([]byte(raw), &meds); err != nil {
		return []models.Medication{}
	}
	return meds
}

// Add assigns an id and appends the medication.
func (s *ReminderService) Add(userID uint, med models.Medication) (models.Medication, error) {
	meds := s.List(userID)

	var maxID int64
	for _, m := range meds {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	med.ID = maxID + 1

	meds = append(meds, med)
	if err := s.save(userID, meds); err != nil {
		return models.Medication{}, err
	}
	return med, nil
}

// Update replaces the medication with the same id.
func (s *ReminderService) Update(userID uint, med models.Medication) error {
	meds := s.List(userID)
	for i, m := range meds {
		if m.ID == med.ID {
			meds[i] = med
			return s.save(userID, meds)
		}
	}
	return fmt.Errorf("medication %d not found", med.ID)
}

// Delete removes a medication by id.
func (s *ReminderService) Delete(userID uint, medicationID int64) error {
	meds := s.List(userID)
	updated := make([]models.Medication, 0, len(meds))
	for _, m := range meds {
		if m.ID != medicationID {
			updated = append(updated, m)
		}
	}
	if len(updated) == len(meds) {
		return fmt.Errorf("medication %d not found", medicationID)
	}
	return s.save(userID, updated)
}

// Upcoming lists the enabled dose times of active medications over the next
// 24 hours from now, soonest first.
func (s *ReminderService) Upcoming(userID uint, now time.Time) []UpcomingDose {
	doses := []UpcomingDose{}

	for _, med := range s.List(userID) {
		if !med.IsActive {
			continue
		}
		if med.EndDate != nil && med.EndDate.Before(now) {
			continue
		}
		if med.StartDate.After(now.Add(24 * time.Hour)) {
			continue
		}
		for _, t := range med.Times {
			if !t.IsEnabled {
				continue
			}
			at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
			if at.Before(now) {
				at = at.Add(24 * time.Hour)
			}
			doses = append(doses, UpcomingDose{Medication: med, At: at})
		}
	}

	sort.Slice(doses, func(i, j int) bool { return doses[i].At.Before(doses[j].At) })
	return doses
}

// DueWithin returns the doses falling inside (now, now+window].
func (s *ReminderService) DueWithin(userID uint, now time.Time, window time.Duration) []UpcomingDose {
	due := []UpcomingDose{}
	for _, d := range s.Upcoming(userID, now) {
		if d.At.Sub(now) <= window {
			due = append(due, d)
		}
	}
	return due
}

// RunScheduler polls once a minute and emits a reminder alert for every
// dose coming due. Intended to run in its own goroutine; returns when the
// context is cancelled. userIDs supplies the users to check, typically all
// users with an active medications record.
func (s *ReminderService) RunScheduler(ctx context.Context, userIDs func() []uint) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, uid := range userIDs() {
				for _, d := range s.DueWithin(uid, now, time.Minute) {
					msg := fmt.Sprintf("Time to take %s (%s)", d.Medication.Name, d.Medication.Dosage)
					EmitAlert(uid, "reminder", "", msg)
					s.emailReminder(uid, d)
					logger.Info("reminder emitted",
						zap.Uint("userID", uid), zap.String("medication", d.Medication.Name))
				}
			}
		}
	}
}

// Email is the fallback channel; push delivery happens through the alert bus.
func (s *ReminderService) emailReminder(userID uint, d UpcomingDose) {
	if config.DB == nil {
		return
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil || user.Disabled {
		return
	}
	if err := utils.SendReminderEmail(user.Email, d.Medication.Name, d.Medication.Dosage, d.At.Format("15:04")); err != nil {
		logger.Warn("reminder email failed", zap.Uint("userID", userID), zap.Error(err))
	}
}

func (s *ReminderService) save(userID uint, meds []models.Medication) error {
	raw, err := json.Marshal(meds)
	if err != nil {
		return err
	}
	return s.store.Put(userID, RecordMedications, string(raw))
}
