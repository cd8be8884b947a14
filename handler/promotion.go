package handler

import (
	"time"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetActivePromotions(c *fiber.Ctx) error {
	now := time.Now()
	var promotions []model.Promotion
	err := database.DB.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("end_date").Find(&promotions).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func GetAllPromotions(c *fiber.Ctx) error {
	var promotions []model.Promotion
	if err := database.DB.Order("end_date DESC").Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func CreatePromotion(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePromotionInput)

	if input.EndDate.Before(input.StartDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "End date must be after start date", nil)
	}

	promotion := model.Promotion{
		Title:           input.Title,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		ImageURL:        input.ImageURL,
		IsActive:        true,
	}
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}
	if err := database.DB.Create(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, promotion)
}

func UpdatePromotion(c *fiber.Ctx) error {
	promotionId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdatePromotionInput)

	db := database.DB
	var promotion model.Promotion
	if err := db.First(&promotion, promotionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&promotion, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}
	if promotion.EndDate.Before(promotion.StartDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "End date must be after start date", nil)
	}
	if err := db.Save(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

func DeletePromotion(c *fiber.Ctx) error {
	promotionId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.Promotion{}, promotionId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Promotion deleted"})
}
