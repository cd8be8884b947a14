package handler

import (
	"errors"
	"time"

	"github.com/Taulan23/kino-system/booking"
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

// GetStaffSeatMap is the hall view for ushers: every occupied cell
// carries the ticket and its owner.
func GetStaffSeatMap(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	db := database.DB
	var showtime model.ShowTime
	if err := db.Preload("Movie").Preload("Hall").Preload("Hall.Cinema").
		First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	seatMap, err := booking.BuildSeatMap(db, &showtime, true)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtime": showtime,
		"seatMap":  seatMap,
	})
}

// GetTodayShowtimes lists sessions of the current day for the staff desk.
func GetTodayShowtimes(c *fiber.Ctx) error {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var showtimes []model.ShowTime
	err := database.DB.
		Preload("Movie").Preload("Hall").Preload("Hall.Cinema").
		Where("start_time >= ? AND start_time < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Order("start_time").Find(&showtimes).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtimes)
}

// CheckTicket looks a ticket up by the code scanned from its QR.
func CheckTicket(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ticket code"))
	}

	var ticket model.Ticket
	err := database.DB.
		Preload("User").Preload("Showtime").Preload("Showtime.Movie").Preload("Showtime.Hall").
		Where("code = ?", code).First(&ticket).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ticket not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticket": ticket,
		"valid":  ticket.Status != constants.TICKET_CANCELLED,
	})
}

// StaffBookTicket books a seat at the desk on behalf of a walk-in
// customer; the ticket is attached to the named user account.
func StaffBookTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.BookTicketInput)
	showtime := c.Locals("showtime").(*model.ShowTime)

	username := c.Query("username")
	user, err := helper.GetUserByUsername(username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Customer account not found", errors.New("unknown username"))
	}

	ticket, err := booking.BookSeat(database.DB, showtime, user.ID, input.Row, input.Seat)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrShowtimeExpired):
			return utils.ErrorResponse(c, fiber.StatusConflict, "The session has already started", err)
		case errors.Is(err, booking.ErrSeatUnavailable):
			return utils.ErrorResponse(c, fiber.StatusConflict, "This seat is already taken", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	helper.InvalidateAvailability(c.Context(), showtime.ID)
	helper.PublishSeatEvent(c.Context(), helper.SeatEvent{
		ShowtimeId: showtime.ID,
		Row:        ticket.Row,
		Seat:       ticket.Seat,
		Action:     "booked",
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}
