package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"
)

// ReactionService keeps the user's allergy reaction log (newest first) and
// derives the statistics shown on the trends screen.
type ReactionService struct {
	store RecordStore
}

func NewReactionService(store RecordStore) *ReactionService {
	return &ReactionService{store: store}
}

// StatisticsPeriod selects how far back the statistics look.
type StatisticsPeriod string

const (
	PeriodWeek  StatisticsPeriod = "week"
	PeriodMonth StatisticsPeriod = "month"
	PeriodAll   StatisticsPeriod = "all"
)

// FrequencyData is the reaction count for one calendar day.
type FrequencyData struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CountData is an occurrence count for one symptom or trigger.
type CountData struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendAnalysis summarises the selected period against the one before it.
type TrendAnalysis struct {
	TotalReactions      int     `json:"total_reactions"`
	AveragePerWeek      float64 `json:"average_per_week"`
	ChangePercent       float64 `json:"change_percent"`
	MostFrequentSymptom string  `json:"most_frequent_symptom,omitempty"`
	MostFrequentTrigger string  `json:"most_frequent_trigger,omitempty"`
	IsIncreasing        bool    `json:"is_increasing"`
}

// Statistics bundles everything the trends screen renders.
type Statistics struct {
	Period    StatisticsPeriod `json:"period"`
	Frequency []FrequencyData  `json:"frequency"`
	Symptoms  []CountData      `json:"symptoms"`
	Triggers  []CountData      `json:"triggers"`
	Trend     TrendAnalysis    `json:"trend"`
}

// List returns the reaction log, newest first. Malformed or missing stored
// data yields an empty list.
func (s *ReactionService) List(userID uint) []models.AllergyReaction {
	raw, ok, err := s.store.Get(userID, RecordReactions)
	if err != nil || !ok {
		return []models.AllergyReaction{}
	}
	var reactions []models.AllergyReaction
	if err := json.Unmarshal([]byte(raw), &reactions); err != nil {
		return []models.AllergyReaction{}
	}
	return reactions
}

// Add assigns an id and prepends the reaction so the log stays newest-first.
func (s *ReactionService) Add(userID uint, reaction models.AllergyReaction) (models.AllergyReaction, error) {
	reactions := s.List(userID)

	var maxID int64
	for _, r := range reactions {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	reaction.ID = maxID + 1
	if reaction.Date.IsZero() {
		reaction.Date = time.Now()
	}

	reactions = append([]models.AllergyReaction{reaction}, reactions...)
	if err := s.save(userID, reactions); err != nil {
		return models.AllergyReaction{}, err
	}
	return reaction, nil
}

// Delete removes a reaction by id.
func (s *ReactionService) Delete(userID uint, reactionID int64) error {
	reactions := s.List(userID)
	updated := make([]models.AllergyReaction, 0, len(reactions))
	for _, r := range reactions {
		if r.ID != reactionID {
			updated = append(updated, r)
		}
	}
	if len(updated) == len(reactions) {
		return fmt.Errorf("reaction %d not found", reactionID)
	}
	return s.save(userID, updated)
}

// Statistics computes per-day frequency, symptom and trigger counts, and the
// trend for the given period ending at now.
func (s *ReactionService) Statistics(userID uint, period StatisticsPeriod, now time.Time) Statistics {
	all := s.List(userID)
	start := periodStart(all, period, now)
	current := reactionsSince(all, start)

	stats := Statistics{
		Period:    period,
		Frequency: frequencyByDay(current),
		Symptoms:  countOccurrences(current, func(r models.AllergyReaction) []string { return r.Symptoms }),
		Triggers:  countOccurrences(current, func(r models.AllergyReaction) []string { return r.PossibleTriggers }),
	}

	stats.Trend = analyzeTrend(all, current, period, start, now)
	return stats
}

func periodStart(all []models.AllergyReaction, period StatisticsPeriod, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		earliest := now
		for _, r := range all {
			if r.Date.Before(earliest) {
				earliest = r.Date
			}
		}
		return earliest
	}
}

func reactionsSince(all []models.AllergyReaction, start time.Time) []models.AllergyReaction {
	out := []models.AllergyReaction{}
	for _, r := range all {
		if !r.Date.Before(start) {
			out = append(out, r)
		}
	}
	return out
}

func reactionsBetween(all []models.AllergyReaction, start, end time.Time) []models.AllergyReaction {
	out := []models.AllergyReaction{}
	for _, r := range all {
		if !r.Date.Before(start) && r.Date.Before(end) {
			out = append(out, r)
		}
	}
	return out
}

func frequencyByDay(reactions []models.AllergyReaction) []FrequencyData {
	byDay := map[string]int{}
	for _, r := range reactions {
		byDay[r.Date.Format("2006-01-02")]++
	}

	out := make([]FrequencyData, 0, len(byDay))
	for day, count := range byDay {
		out = append(out, FrequencyData{Date: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func countOccurrences(reactions []models.AllergyReaction, pick func(models.AllergyReaction) []string) []CountData {
	counts := map[string]int{}
	for _, r := range reactions {
		for _, name := range pick(r) {
			if name != "" {
				counts[name]++
			}
		}
	}

	out := make([]CountData, 0, len(counts))
	for name, count := range counts {
		out = append(out, CountData{Name: name, Count: count})
	}
	// Highest count first, name as tiebreaker for stable output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func analyzeTrend(all, current []models.AllergyReaction, period StatisticsPeriod, start, now time.Time) TrendAnalysis {
	trend := TrendAnalysis{TotalReactions: len(current)}

	weeks := now.Sub(start).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	trend.AveragePerWeek = float64(len(current)) / weeks

	if symptoms := countOccurrences(current, func(r models.AllergyReaction) []string { return r.Symptoms }); len(symptoms) > 0 {
		trend.MostFrequentSymptom = symptoms[0].Name
	}
	if triggers := countOccurrences(current, func(r models.AllergyReaction) []string { return r.PossibleTriggers }); len(triggers) > 0 {
		trend.MostFrequentTrigger = triggers[0].Name
	}

	// Compare against the equally long window immediately before the period.
	if period != PeriodAll {
		previousStart := start.Add(-now.Sub(start))
		previous := reactionsBetween(all, previousStart, start)
		if len(previous) > 0 {
			trend.ChangePercent = (float64(len(current)) - float64(len(previous))) / float64(len(previous)) * 100
		} else if len(current) > 0 {
			trend.ChangePercent = 100
		}
		trend.IsIncreasing = len(current) > len(previous)
	}
	return trend
}

func (s *ReactionService) save(userID uint, reactions []models.AllergyReaction) error {
	raw, err := json.Marshal(reactions)
	if err != nil {
		return err
	}
	return s.store.Put(userID, RecordReactions, string(raw))
}
