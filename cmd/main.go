package main

import (
	"context"
	"log"

	"github.com/sultumov/AllergyTrackerr/config"
	"github.com/sultumov/AllergyTrackerr/logger"
	"github.com/sultumov/AllergyTrackerr/models"
	"github.com/sultumov/AllergyTrackerr/routes"
	"github.com/sultumov/AllergyTrackerr/services"
	"github.com/sultumov/AllergyTrackerr/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("Failed to initialize push service: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	// Medication reminders run for every user that has a reminders record.
	reminders := services.NewReminderService(services.NewDBRecordStore(config.DB))
	go reminders.RunScheduler(context.Background(), func() []uint {
		var ids []uint
		config.DB.Model(&models.PreferenceRecord{}).
			Where("name = ?", services.RecordMedications).
			Distinct().Pluck("user_id", &ids)
		return ids
	})

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}
