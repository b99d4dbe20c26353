package models

import "time"

type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Type      string `gorm:"size:20"` // "allergen" | "reminder" | "info"
	Message   string `gorm:"type:text"`
	Barcode   string `gorm:"size:32"` // set for allergen alerts raised by a scan
	CreatedAt time.Time
}
