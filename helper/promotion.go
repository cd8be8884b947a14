package helper

import (
	"log"
	"time"

	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/go-co-op/gocron/v2"
)

// StartDailyJobs runs the nightly housekeeping: expired promotions get
// deactivated and stale password-reset tokens are purged.
func StartDailyJobs() gocron.Scheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("scheduler init: %v", err)
		return nil
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() {
			db := database.DB
			now := time.Now()

			result := db.Model(&model.Promotion{}).
				Where("is_active = ? AND end_date < ?", true, now).
				Update("is_active", false)
			if result.Error != nil {
				log.Printf("promotion expiry: %v", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("promotion expiry: deactivated %d promotions", result.RowsAffected)
			}

			if err := db.Where("expires_at < ? OR used = ?", now, true).
				Delete(&model.PasswordResetToken{}).Error; err != nil {
				log.Printf("reset token purge: %v", err)
			}
		}),
	)
	if err != nil {
		log.Printf("daily job schedule: %v", err)
	}

	scheduler.Start()
	return scheduler
}
