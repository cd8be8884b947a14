package validate

import (
	"errors"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

// BookTicket validates the seat coordinates against the hall layout of
// the showtime in the id param and parks both in Locals.
func BookTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		showtimeId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing showtime id"))
		}

		var input model.BookTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		db := database.DB
		var showtime model.ShowTime
		if err := db.Preload("Hall").Preload("Movie").First(&showtime, showtimeId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		if !showtime.IsActive {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("showtime is not active"))
		}
		if input.Row > showtime.Hall.Rows || input.Seat > showtime.Hall.SeatsPerRow {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat is outside the hall layout", nil)
		}

		c.Locals("input", input)
		c.Locals("showtime", &showtime)
		return c.Next()
	}
}
