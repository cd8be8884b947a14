package handler

import (
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetAllRules(c *fiber.Ctx) error {
	var rules []model.Rule
	err := database.DB.Where("is_active = ?", true).
		Order("sort_order, id").Find(&rules).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rules)
}

func CreateRule(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRuleInput)

	rule := model.Rule{
		Title:    input.Title,
		Content:  input.Content,
		Order:    input.Order,
		IsActive: true,
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if err := database.DB.Create(&rule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, rule)
}

func UpdateRule(c *fiber.Ctx) error {
	ruleId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateRuleInput)

	db := database.DB
	var rule model.Rule
	if err := db.First(&rule, ruleId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if err := copier.CopyWithOption(&rule, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if err := db.Save(&rule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rule)
}

func DeleteRule(c *fiber.Ctx) error {
	ruleId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.Rule{}, ruleId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Rule deleted"})
}
