package handler

import (
	"errors"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProfile(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}

	var user model.User
	if err := database.DB.Preload("City").First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateProfile(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}
	input := c.Locals("input").(model.UpdateProfileInput)

	db := database.DB
	var user model.User
	if err := db.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if input.CityId != nil {
		var city model.City
		if err := db.Where("is_active = ?", true).First(&city, *input.CityId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "City not found", err)
		}
	}

	// copier skips nil pointers, so only the provided fields change
	if err := copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}
	input := c.Locals("input").(model.ChangePasswordInput)

	db := database.DB
	var user model.User
	if err := db.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Model(&user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password changed"})
}

// admin user management

func GetAllUsers(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.User{}).Preload("City")
	if search := c.Query("search"); search != "" {
		query = query.Where("username LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var totalCount int64
	query.Count(&totalCount)

	var users []model.User
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Order("id").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       users,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func CreateUser(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AdminCreateUserInput)

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	role := input.Role
	if role == "" {
		role = constants.ROLE_USER
	}

	user := model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     role,
		Phone:    input.Phone,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username is already taken", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func UpdateUser(c *fiber.Ctx) error {
	userId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.AdminUpdateUserInput)

	db := database.DB
	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ResetUserPassword(c *fiber.Ctx) error {
	userId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.AdminResetPasswordInput)

	db := database.DB
	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Model(&user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password reset"})
}

func DeleteUser(c *fiber.Ctx) error {
	userId := c.Locals("inputId").(int)
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}
	if claim.UserId == uint(userId) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "You cannot delete your own account", nil)
	}

	result := database.DB.Delete(&model.User{}, userId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "User deleted"})
}
