package helper

import (
	"strconv"

	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/gofiber/fiber/v2"
)

const cityCookie = "selected_city"

// GetSelectedCity resolves the visitor's city from the cookie. Without
// a valid cookie there is no city and listings stay unfiltered.
func GetSelectedCity(c *fiber.Ctx) *model.City {
	raw := c.Cookies(cityCookie)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}

	var city model.City
	if err := database.DB.Where("is_active = ?", true).First(&city, uint(id)).Error; err != nil {
		return nil
	}
	return &city
}

func SetSelectedCity(c *fiber.Ctx, cityId uint) {
	c.Cookie(&fiber.Cookie{
		Name:     cityCookie,
		Value:    strconv.FormatUint(uint64(cityId), 10),
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HTTPOnly: false,
	})
}
