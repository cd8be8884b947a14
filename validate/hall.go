package validate

import (
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateHall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHallInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		db := database.DB
		var cinema model.Cinema
		if err := db.First(&cinema, input.CinemaId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema not found", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
