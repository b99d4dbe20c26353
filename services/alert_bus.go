package services

import (
	"fmt"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert records an alert and fans it out to connected websocket clients
// and registered devices. Safe to call anywhere; a no-op until initialized.
func EmitAlert(userID uint, typ, barcode, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Barcode: barcode, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		title := "Allergen warning"
		if typ == "reminder" {
			title = "Medication reminder"
		}
		_alert.ps.PushToUser(userID, title, message, map[string]string{
			"type": typ, "barcode": barcode, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}
