package services

import (
	"testing"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderAddAssignsSequentialIDs(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())

	first, err := svc.Add(1, models.Medication{Name: "Cetirizine", IsActive: true})
	require.NoError(t, err)
	second, err := svc.Add(1, models.Medication{Name: "Loratadine", IsActive: true})
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.ID)
	assert.EqualValues(t, 2, second.ID)
	assert.Len(t, svc.List(1), 2)
}

func TestReminderUpdate(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())
	med, err := svc.Add(1, models.Medication{Name: "Cetirizine", Dosage: "10mg", IsActive: true})
	require.NoError(t, err)

	med.Dosage = "5mg"
	require.NoError(t, svc.Update(1, med))

	assert.Equal(t, "5mg", svc.List(1)[0].Dosage)
}

func TestReminderUpdateUnknownID(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())
	err := svc.Update(1, models.Medication{ID: 42, Name: "Nothing"})
	assert.Error(t, err)
}

func TestReminderDelete(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())
	med, err := svc.Add(1, models.Medication{Name: "Cetirizine"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, med.ID))
	assert.Empty(t, svc.List(1))

	assert.Error(t, svc.Delete(1, med.ID))
}

func TestReminderUpcomingSortsAndRolls(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := svc.Add(1, models.Medication{
		Name:      "Cetirizine",
		IsActive:  true,
		StartDate: now.AddDate(0, 0, -1),
		Times: []models.MedicationTime{
			{Hour: 8, Minute: 0, IsEnabled: true},  // already passed, rolls to tomorrow
			{Hour: 20, Minute: 0, IsEnabled: true}, // later today
			{Hour: 14, Minute: 0, IsEnabled: false},
		},
	})
	require.NoError(t, err)

	doses := svc.Upcoming(1, now)
	require.Len(t, doses, 2)
	assert.Equal(t, 20, doses[0].At.Hour())
	assert.Equal(t, now.Day(), doses[0].At.Day())
	assert.Equal(t, 8, doses[1].At.Hour())
	assert.Equal(t, now.AddDate(0, 0, 1).Day(), doses[1].At.Day())
}

func TestReminderUpcomingSkipsInactiveAndEnded(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ended := now.AddDate(0, 0, -1)

	_, err := svc.Add(1, models.Medication{
		Name: "Paused", IsActive: false,
		Times: []models.MedicationTime{{Hour: 18, IsEnabled: true}},
	})
	require.NoError(t, err)
	_, err = svc.Add(1, models.Medication{
		Name: "Finished", IsActive: true, EndDate: &ended,
		Times: []models.MedicationTime{{Hour: 18, IsEnabled: true}},
	})
	require.NoError(t, err)

	assert.Empty(t, svc.Upcoming(1, now))
}

func TestReminderDueWithin(t *testing.T) {
	svc := NewReminderService(NewMemoryRecordStore())
	now := time.Date(2026, 3, 10, 19, 59, 30, 0, time.UTC)

	_, err := svc.Add(1, models.Medication{
		Name: "Cetirizine", IsActive: true,
		Times: []models.MedicationTime{
			{Hour: 20, Minute: 0, IsEnabled: true},
			{Hour: 22, Minute: 0, IsEnabled: true},
		},
	})
	require.NoError(t, err)

	due := svc.DueWithin(1, now, time.Minute)
	require.Len(t, due, 1)
	assert.Equal(t, 20, due[0].At.Hour())
}
