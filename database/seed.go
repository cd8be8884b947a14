package database

import (
	"fmt"

	"github.com/Taulan23/kino-system/config"
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"gorm.io/gorm"
)

// SeedData inserts the baseline records the app expects on first run.
// Safe to call repeatedly.
func SeedData(db *gorm.DB) {
	seedAdmin(db)
	seedCities(db)
	seedGenres(db)
	seedRules(db)
}

func seedAdmin(db *gorm.DB) {
	password := config.ConfigDefault("ADMIN_PASSWORD", "admin12345")
	hashed, err := utils.HashPassword(password)
	if err != nil {
		fmt.Println("seed admin:", err)
		return
	}
	admin := model.User{
		Username: config.ConfigDefault("ADMIN_USERNAME", "admin"),
		Email:    config.ConfigDefault("ADMIN_EMAIL", "admin@kino.local"),
		Password: hashed,
		Role:     constants.ROLE_ADMIN,
		IsActive: true,
	}
	db.Where(model.User{Username: admin.Username}).FirstOrCreate(&admin)
}

func seedCities(db *gorm.DB) {
	names := []string{"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg", "Kazan"}
	for _, name := range names {
		city := model.City{Name: name, IsActive: true}
		db.Where(model.City{Name: name}).FirstOrCreate(&city)
	}
}

func seedGenres(db *gorm.DB) {
	names := []string{"Action", "Comedy", "Drama", "Horror", "Sci-Fi", "Thriller", "Animation", "Romance", "Documentary", "Family"}
	for _, name := range names {
		genre := model.Genre{Name: name}
		db.Where(model.Genre{Name: name}).FirstOrCreate(&genre)
	}
}

func seedRules(db *gorm.DB) {
	rules := []model.Rule{
		{Title: "Arrive on time", Content: "Entrance to the hall closes 10 minutes after the session starts.", Order: 1, IsActive: true},
		{Title: "Cancellation policy", Content: "Tickets can be cancelled no later than one hour before the session starts.", Order: 2, IsActive: true},
		{Title: "Age restrictions", Content: "Age restrictions indicated for each movie are enforced at the entrance.", Order: 3, IsActive: true},
	}
	for _, rule := range rules {
		r := rule
		db.Where(model.Rule{Title: r.Title}).FirstOrCreate(&r)
	}
}
