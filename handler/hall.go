package handler

import (
	"errors"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateHall(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateHallInput)

	hall := model.Hall{
		CinemaId:    input.CinemaId,
		Name:        input.Name,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
	}
	if err := database.DB.Create(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, hall)
}

// UpdateHall refuses to shrink the layout below a seat that an active
// ticket already occupies.
func UpdateHall(c *fiber.Ctx) error {
	hallId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateHallInput)

	db := database.DB
	var hall model.Hall
	if err := db.First(&hall, hallId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	newRows := hall.Rows
	newSeats := hall.SeatsPerRow
	if input.Rows != nil {
		newRows = *input.Rows
	}
	if input.SeatsPerRow != nil {
		newSeats = *input.SeatsPerRow
	}
	if newRows < hall.Rows || newSeats < hall.SeatsPerRow {
		var blocked int64
		db.Model(&model.Ticket{}).
			Joins("JOIN show_times ON show_times.id = tickets.showtime_id").
			Where("show_times.hall_id = ? AND tickets.status IN ?", hall.ID, constants.ActiveTicketStatuses).
			Where("tickets.seat_row > ? OR tickets.seat_number > ?", newRows, newSeats).
			Count(&blocked)
		if blocked > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict,
				"Cannot shrink the hall: booked seats would fall outside the new layout",
				errors.New("occupied seats out of bounds"))
		}
	}

	if err := copier.CopyWithOption(&hall, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Save(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func DeleteHall(c *fiber.Ctx) error {
	hallId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.Hall{}, hallId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Hall deleted"})
}
