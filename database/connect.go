package database

import (
	"fmt"
	"strconv"

	"github.com/Taulan23/kino-system/config"
	"github.com/Taulan23/kino-system/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic(err)
	}
	fmt.Println("Database Migrated")
	SeedData(DB)
}

// Migrate creates the schema and the partial unique index that guards
// seat uniqueness among non-cancelled tickets.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.City{},
		&model.User{},
		&model.Genre{},
		&model.Movie{},
		&model.Cinema{},
		&model.Hall{},
		&model.ShowTime{},
		&model.Ticket{},
		&model.Review{},
		&model.Promotion{},
		&model.Rule{},
		&model.PasswordResetToken{},
	)
	if err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_active_seat
		ON tickets (showtime_id, seat_row, seat_number) WHERE status <> 'cancelled'`).Error
}
