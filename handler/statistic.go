package handler

import (
	"time"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

func GetStatisticSummary(c *fiber.Ctx) error {
	db := database.DB

	var ticketsSold int64
	db.Model(&model.Ticket{}).Where("status IN ?", constants.ActiveTicketStatuses).Count(&ticketsSold)

	var cancelled int64
	db.Model(&model.Ticket{}).Where("status = ?", constants.TICKET_CANCELLED).Count(&cancelled)

	var revenue float64
	db.Model(&model.Ticket{}).
		Where("status IN ?", constants.ActiveTicketStatuses).
		Select("COALESCE(SUM(price), 0)").Scan(&revenue)

	var users int64
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_USER).Count(&users)

	var upcoming int64
	db.Model(&model.ShowTime{}).
		Where("is_active = ? AND start_time > ?", true, time.Now()).Count(&upcoming)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticketsSold":       ticketsSold,
		"ticketsCancelled":  cancelled,
		"revenue":           revenue,
		"customers":         users,
		"upcomingShowtimes": upcoming,
	})
}

// GetSalesByMovie aggregates active ticket counts and revenue per movie.
func GetSalesByMovie(c *fiber.Ctx) error {
	type movieSales struct {
		MovieId uint    `json:"movieId"`
		Title   string  `json:"title"`
		Tickets int64   `json:"tickets"`
		Revenue float64 `json:"revenue"`
	}

	var rows []movieSales
	err := database.DB.Model(&model.Ticket{}).
		Select("movies.id AS movie_id, movies.title, COUNT(tickets.id) AS tickets, COALESCE(SUM(tickets.price), 0) AS revenue").
		Joins("JOIN show_times ON show_times.id = tickets.showtime_id").
		Joins("JOIN movies ON movies.id = show_times.movie_id").
		Where("tickets.status IN ?", constants.ActiveTicketStatuses).
		Group("movies.id, movies.title").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetSalesByCinema aggregates active ticket counts and revenue per cinema.
func GetSalesByCinema(c *fiber.Ctx) error {
	type cinemaSales struct {
		CinemaId uint    `json:"cinemaId"`
		Name     string  `json:"name"`
		Tickets  int64   `json:"tickets"`
		Revenue  float64 `json:"revenue"`
	}

	var rows []cinemaSales
	err := database.DB.Model(&model.Ticket{}).
		Select("cinemas.id AS cinema_id, cinemas.name, COUNT(tickets.id) AS tickets, COALESCE(SUM(tickets.price), 0) AS revenue").
		Joins("JOIN show_times ON show_times.id = tickets.showtime_id").
		Joins("JOIN halls ON halls.id = show_times.hall_id").
		Joins("JOIN cinemas ON cinemas.id = halls.cinema_id").
		Where("tickets.status IN ?", constants.ActiveTicketStatuses).
		Group("cinemas.id, cinemas.name").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetSalesByDay returns daily ticket counts for the last 30 days.
func GetSalesByDay(c *fiber.Ctx) error {
	type daySales struct {
		Day     time.Time `json:"day"`
		Tickets int64     `json:"tickets"`
		Revenue float64   `json:"revenue"`
	}

	since := time.Now().AddDate(0, 0, -30)
	var rows []daySales
	err := database.DB.Model(&model.Ticket{}).
		Select("DATE_TRUNC('day', booking_date) AS day, COUNT(id) AS tickets, COALESCE(SUM(price), 0) AS revenue").
		Where("status IN ? AND booking_date >= ?", constants.ActiveTicketStatuses, since).
		Group("day").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
