package handler

import (
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

func GetAllCities(c *fiber.Ctx) error {
	var cities []model.City
	if err := database.DB.Where("is_active = ?", true).Order("name").Find(&cities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	selected := helper.GetSelectedCity(c)
	var selectedId uint
	if selected != nil {
		selectedId = selected.ID
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"cities":   cities,
		"selected": selectedId,
	})
}

// SelectCity remembers the visitor's city in a cookie; listings filter
// by it from then on.
func SelectCity(c *fiber.Ctx) error {
	cityId := c.Locals("inputId").(int)

	var city model.City
	if err := database.DB.Where("is_active = ?", true).First(&city, cityId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	helper.SetSelectedCity(c, city.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, city)
}

func CreateCity(c *fiber.Ctx) error {
	input := c.Locals("input").(model.City)
	input.ID = 0
	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "City already exists", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func DeleteCity(c *fiber.Ctx) error {
	cityId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.City{}, cityId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "City deleted"})
}
