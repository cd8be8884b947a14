package helper

import (
	"log"
	"time"

	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/robfig/cron/v3"
)

// StartShowtimeSweeper deactivates showtimes whose session has started,
// so listings stop offering them. Runs every five minutes.
func StartShowtimeSweeper() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("*/5 * * * *", func() {
		db := database.DB
		result := db.Model(&model.ShowTime{}).
			Where("is_active = ? AND start_time <= ?", true, time.Now()).
			Update("is_active", false)
		if result.Error != nil {
			log.Printf("showtime sweep: %v", result.Error)
			return
		}
		if result.RowsAffected > 0 {
			log.Printf("showtime sweep: deactivated %d past showtimes", result.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("showtime sweep schedule: %v", err)
	}
	c.Start()
	return c
}
