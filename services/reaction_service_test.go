package services

import (
	"testing"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionAddPrependsNewestFirst(t *testing.T) {
	svc := NewReactionService(NewMemoryRecordStore())

	first, err := svc.Add(1, models.AllergyReaction{Symptoms: []string{"hives"}})
	require.NoError(t, err)
	second, err := svc.Add(1, models.AllergyReaction{Symptoms: []string{"sneezing"}})
	require.NoError(t, err)

	log := svc.List(1)
	require.Len(t, log, 2)
	assert.Equal(t, second.ID, log[0].ID)
	assert.Equal(t, first.ID, log[1].ID)
	assert.False(t, log[0].Date.IsZero())
}

func TestReactionDelete(t *testing.T) {
	svc := NewReactionService(NewMemoryRecordStore())
	r, err := svc.Add(1, models.AllergyReaction{Symptoms: []string{"hives"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, r.ID))
	assert.Empty(t, svc.List(1))
	assert.Error(t, svc.Delete(1, r.ID))
}

func seedReactions(t *testing.T, svc *ReactionService, now time.Time) {
	t.Helper()
	entries := []models.AllergyReaction{
		{Date: now.AddDate(0, 0, -1), Symptoms: []string{"hives", "itching"}, PossibleTriggers: []string{"milk"}},
		{Date: now.AddDate(0, 0, -2), Symptoms: []string{"hives"}, PossibleTriggers: []string{"milk"}},
		{Date: now.AddDate(0, 0, -3), Symptoms: []string{"sneezing"}, PossibleTriggers: []string{"pollen"}},
		{Date: now.AddDate(0, 0, -10), Symptoms: []string{"hives"}, PossibleTriggers: []string{"peanuts"}},
	}
	for _, e := range entries {
		_, err := svc.Add(1, e)
		require.NoError(t, err)
	}
}

func TestReactionStatisticsWeek(t *testing.T) {
	svc := NewReactionService(NewMemoryRecordStore())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedReactions(t, svc, now)

	stats := svc.Statistics(1, PeriodWeek, now)

	assert.Equal(t, PeriodWeek, stats.Period)
	assert.Equal(t, 3, stats.Trend.TotalReactions)
	assert.Len(t, stats.Frequency, 3)

	require.NotEmpty(t, stats.Symptoms)
	assert.Equal(t, "hives", stats.Symptoms[0].Name)
	assert.Equal(t, 2, stats.Symptoms[0].Count)

	require.NotEmpty(t, stats.Triggers)
	assert.Equal(t, "milk", stats.Triggers[0].Name)
	assert.Equal(t, "hives", stats.Trend.MostFrequentSymptom)
	assert.Equal(t, "milk", stats.Trend.MostFrequentTrigger)
}

func TestReactionStatisticsTrendComparesPreviousWindow(t *testing.T) {
	svc := NewReactionService(NewMemoryRecordStore())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedReactions(t, svc, now)

	stats := svc.Statistics(1, PeriodWeek, now)

	// 3 reactions this week vs 1 the week before.
	assert.True(t, stats.Trend.IsIncreasing)
	assert.InDelta(t, 200, stats.Trend.ChangePercent, 0.01)
}

func TestReactionStatisticsAllPeriod(t *testing.T) {
	svc := NewReactionService(NewMemoryRecordStore())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedReactions(t, svc, now)

	stats := svc.Statistics(1, PeriodAll, now)

	assert.Equal(t, 4, stats.Trend.TotalReactions)
	assert.False(t, stats.Trend.IsIncreasing)
	assert.Zero(t, stats.Trend.ChangePercent)
}

func TestReactionStatisticsEmptyLog(t *testing.T) {
	svc := NewReactionService(NewMemoryRecordStore())
	stats := svc.Statistics(1, PeriodMonth, time.Now())

	assert.Zero(t, stats.Trend.TotalReactions)
	assert.Empty(t, stats.Frequency)
	assert.Empty(t, stats.Symptoms)
	assert.Empty(t, stats.Triggers)
	assert.Empty(t, stats.Trend.MostFrequentSymptom)
}
