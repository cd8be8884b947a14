package validate

import (
	"errors"
	"time"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateShowTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowTimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if !input.StartTime.After(time.Now()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Start time must be in the future", nil)
		}

		db := database.DB
		var movie model.Movie
		if err := db.First(&movie, input.MovieId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		var hall model.Hall
		if err := db.First(&hall, input.HallId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Hall not found", err)
		}

		// sessions in the same hall must not overlap
		end := input.StartTime.Add(time.Duration(movie.Duration) * time.Minute)
		var clash int64
		db.Model(&model.ShowTime{}).
			Joins("JOIN movies ON movies.id = show_times.movie_id").
			Where("show_times.hall_id = ? AND show_times.is_active = ?", input.HallId, true).
			Where("show_times.start_time < ? AND ? < show_times.start_time + (movies.duration * interval '1 minute')",
				end, input.StartTime).
			Count(&clash)
		if clash > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Hall is occupied at that time", errors.New("overlapping showtime"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
