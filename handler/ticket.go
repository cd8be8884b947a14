package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/Taulan23/kino-system/booking"
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

// BookTicket books the seat parked by the validator for the current user.
func BookTicket(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}
	input := c.Locals("input").(model.BookTicketInput)
	showtime := c.Locals("showtime").(*model.ShowTime)

	ticket, err := booking.BookSeat(database.DB, showtime, claim.UserId, input.Row, input.Seat)
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

	ticket.Showtime = *showtime
	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

// CancelTicket cancels the caller's own ticket; admins may cancel any
// ticket, at any time before or after the session.
func CancelTicket(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(int)
	claim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}

	db := database.DB
	var ticket model.Ticket
	if err := db.Preload("Showtime").First(&ticket, ticketId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if !isAdmin && ticket.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only cancel your own tickets", nil)
	}

	if err := booking.CancelTicket(db, &ticket, isAdmin); err != nil {
		switch {
		case errors.Is(err, booking.ErrAlreadyCancelled):
			if isAdmin {
				return utils.WarningResponse(c, fiber.StatusOK, "The ticket was already cancelled")
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "The ticket is already cancelled", err)
		case errors.Is(err, booking.ErrTooLateToCancel):
			return utils.ErrorResponse(c, fiber.StatusConflict,
				"Tickets can be cancelled no later than one hour before the session", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	helper.InvalidateAvailability(c.Context(), ticket.ShowtimeId)
	helper.PublishSeatEvent(c.Context(), helper.SeatEvent{
		ShowtimeId: ticket.ShowtimeId,
		Row:        ticket.Row,
		Seat:       ticket.Seat,
		Action:     "cancelled",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Ticket cancelled"})
}

func GetMyTickets(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}

	var tickets []model.Ticket
	err := database.DB.
		Preload("Showtime").Preload("Showtime.Movie").
		Preload("Showtime.Hall").Preload("Showtime.Hall.Cinema").
		Where("user_id = ?", claim.UserId).
		Order("booking_date DESC").Find(&tickets).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	type ticketRow struct {
		model.Ticket
		CanCancel bool `json:"canCancel"`
	}
	rows := make([]ticketRow, 0, len(tickets))
	for _, t := range tickets {
		canCancel := t.Status != constants.TICKET_CANCELLED &&
			t.Showtime.StartTime.Sub(now) >= booking.CancelWindow
		rows = append(rows, ticketRow{Ticket: t, CanCancel: canCancel})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetTicketQR renders the ticket code as a PNG for hall entry checks.
func GetTicketQR(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(int)
	claim, isAdmin, isStaff := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}

	var ticket model.Ticket
	if err := database.DB.First(&ticket, ticketId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if !isAdmin && !isStaff && ticket.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only view your own tickets", nil)
	}

	content := fmt.Sprintf("ticket:%s", ticket.Code)
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// GetAllTickets is the admin listing with user, movie, status and date
// filters.
func GetAllTickets(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterTicketInput)

	db := database.DB
	query := db.Model(&model.Ticket{}).
		Preload("User").Preload("Showtime").Preload("Showtime.Movie").Preload("Showtime.Hall").
		Joins("JOIN users ON users.id = tickets.user_id").
		Joins("JOIN show_times ON show_times.id = tickets.showtime_id")

	if filter.User != "" {
		pattern := "%" + filter.User + "%"
		query = query.Where("users.username LIKE ? OR users.email LIKE ?", pattern, pattern)
	}
	if filter.MovieId != 0 {
		query = query.Where("show_times.movie_id = ?", filter.MovieId)
	}
	if filter.Status != "" {
		query = query.Where("tickets.status = ?", filter.Status)
	}
	if filter.Date != "" {
		if day, err := time.Parse("2006-01-02", filter.Date); err == nil {
			query = query.Where("tickets.booking_date >= ? AND tickets.booking_date < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var totalCount int64
	query.Count(&totalCount)

	var tickets []model.Ticket
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("tickets.booking_date DESC").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       tickets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}
