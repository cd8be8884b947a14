package handler

import (
	"context"
	"time"

	"github.com/Taulan23/kino-system/booking"
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

type showtimeWithAvailability struct {
	model.ShowTime
	AvailableSeats int `json:"availableSeats"`
}

func availableSeats(ctx context.Context, showtime *model.ShowTime) (int, error) {
	if count, ok := helper.GetCachedAvailability(ctx, showtime.ID); ok {
		return count, nil
	}
	count, err := booking.AvailableSeatCount(database.DB, showtime)
	if err != nil {
		return 0, err
	}
	helper.SetCachedAvailability(ctx, showtime.ID, count)
	return count, nil
}

func GetAllShowTimes(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterShowTimeInput)

	db := database.DB
	query := db.Model(&model.ShowTime{}).
		Preload("Movie").Preload("Hall").Preload("Hall.Cinema").Preload("Hall.Cinema.City").
		Joins("JOIN halls ON halls.id = show_times.hall_id").
		Joins("JOIN cinemas ON cinemas.id = halls.cinema_id").
		Where("show_times.is_active = ? AND show_times.start_time > ?", true, time.Now())

	if city := helper.GetSelectedCity(c); city != nil {
		query = query.Where("cinemas.city_id = ?", city.ID)
	}
	if filter.MovieId != 0 {
		query = query.Where("show_times.movie_id = ?", filter.MovieId)
	}
	if filter.CinemaId != 0 {
		query = query.Where("cinemas.id = ?", filter.CinemaId)
	}
	if filter.Date != "" {
		if day, err := time.Parse("2006-01-02", filter.Date); err == nil {
			query = query.Where("show_times.start_time >= ? AND show_times.start_time < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var totalCount int64
	query.Count(&totalCount)

	var showtimes []model.ShowTime
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("show_times.start_time").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]showtimeWithAvailability, 0, len(showtimes))
	for i := range showtimes {
		count, err := availableSeats(c.Context(), &showtimes[i])
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		rows = append(rows, showtimeWithAvailability{ShowTime: showtimes[i], AvailableSeats: count})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetShowTimeSeats returns the public seat map for the booking page.
func GetShowTimeSeats(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	db := database.DB
	var showtime model.ShowTime
	if err := db.Preload("Movie").Preload("Hall").Preload("Hall.Cinema").
		First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	seatMap, err := booking.BuildSeatMap(db, &showtime, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtime": showtime,
		"seatMap":  seatMap,
	})
}

func CreateShowTime(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateShowTimeInput)

	showtime := model.ShowTime{
		MovieId:   input.MovieId,
		HallId:    input.HallId,
		StartTime: input.StartTime,
		Price:     input.Price,
		IsActive:  true,
	}
	if input.IsActive != nil {
		showtime.IsActive = *input.IsActive
	}
	if err := database.DB.Create(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, showtime)
}

func UpdateShowTime(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateShowTimeInput)

	db := database.DB
	var showtime model.ShowTime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&showtime, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		showtime.IsActive = *input.IsActive
	}
	if err := db.Save(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	helper.InvalidateAvailability(c.Context(), showtime.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func DeleteShowTime(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.ShowTime{}, showtimeId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	helper.InvalidateAvailability(c.Context(), uint(showtimeId))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Showtime deleted"})
}
