package handler

import (
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetAllCinemas(c *fiber.Ctx) error {
	db := database.DB
	query := db.Model(&model.Cinema{}).Preload("City").Preload("Halls").
		Where("cinemas.is_active = ?", true)

	if city := helper.GetSelectedCity(c); city != nil {
		query = query.Where("cinemas.city_id = ?", city.ID)
	}

	var cinemas []model.Cinema
	if err := query.Order("name").Find(&cinemas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinemas)
}

func GetCinemaById(c *fiber.Ctx) error {
	cinemaId := c.Locals("inputId").(int)

	var cinema model.Cinema
	if err := database.DB.Preload("City").Preload("Halls").First(&cinema, cinemaId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func CreateCinema(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateCinemaInput)

	db := database.DB
	var city model.City
	if err := db.First(&city, input.CityId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "City not found", err)
	}

	cinema := model.Cinema{
		Name:        input.Name,
		CityId:      input.CityId,
		Address:     input.Address,
		Phone:       input.Phone,
		Description: input.Description,
		Facilities:  input.Facilities,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if input.IsActive != nil {
		cinema.IsActive = *input.IsActive
	}
	if err := db.Create(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, cinema)
}

func UpdateCinema(c *fiber.Ctx) error {
	cinemaId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateCinemaInput)

	db := database.DB
	var cinema model.Cinema
	if err := db.First(&cinema, cinemaId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if input.CityId != nil {
		var city model.City
		if err := db.First(&city, *input.CityId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "City not found", err)
		}
	}

	if err := copier.CopyWithOption(&cinema, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		cinema.IsActive = *input.IsActive
	}
	if err := db.Save(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func DeleteCinema(c *fiber.Ctx) error {
	cinemaId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.Cinema{}, cinemaId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Cinema deleted"})
}
