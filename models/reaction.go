package models

import "time"

// AllergyReaction is one user-reported episode in the append-only tracker log.
type AllergyReaction struct {
	ID               int64     `json:"id"`
	Date             time.Time `json:"date"`
	Symptoms         []string  `json:"symptoms"`
	PossibleTriggers []string  `json:"possible_triggers"`
	Notes            string    `json:"notes,omitempty"`
}
