package models

import "time"

// Medication is one reminder entry: what to take, how often, and at which
// times of day. Stored as part of the user's medications record.
type Medication struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Dosage    string              `json:"dosage"`
	Frequency MedicationFrequency `json:"frequency"`
	StartDate time.Time           `json:"start_date"`
	EndDate   *time.Time          `json:"end_date,omitempty"`
	Times     []MedicationTime    `json:"times"`
	Notes     string              `json:"notes,omitempty"`
	IsActive  bool                `json:"is_active"`
}

type MedicationFrequency string

const (
	OnceDaily       MedicationFrequency = "once_daily"
	TwiceDaily      MedicationFrequency = "twice_daily"
	ThreeTimesDaily MedicationFrequency = "three_times_daily"
	FourTimesDaily  MedicationFrequency = "four_times_daily"
	EveryOtherDay   MedicationFrequency = "every_other_day"
	Weekly          MedicationFrequency = "weekly"
	AsNeeded        MedicationFrequency = "as_needed"
	CustomSchedule  MedicationFrequency = "custom"
)

type MedicationTime struct {
	Hour      int  `json:"hour"`
	Minute    int  `json:"minute"`
	IsEnabled bool `json:"is_enabled"`
}
