package models

import "time"

// PreferenceRecord is one named JSON blob belonging to one user. The app's
// list-shaped state (allergen profile, recent products, medications,
// reactions) is stored this way rather than relationally, mirroring the
// mobile client's preference storage.
type PreferenceRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_user_record;not null"`
	Name      string `gorm:"uniqueIndex:idx_user_record;size:64;not null"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
	CreatedAt time.Time
}
