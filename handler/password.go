package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/Taulan23/kino-system/config"
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const resetTokenTTL = 24 * time.Hour

// ForgotPassword issues a reset token and mails the link. The response
// is the same whether or not the email exists.
func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ForgotPasswordInput)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user != nil && user.IsActive {
		token, err := utils.RandomToken(32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		reset := model.PasswordResetToken{
			UserId:    user.ID,
			Token:     token,
			ExpiresAt: time.Now().Add(resetTokenTTL),
		}
		if err := database.DB.Create(&reset).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		base := config.ConfigDefault("FRONTEND_URL", "http://localhost:3000")
		link := fmt.Sprintf("%s/reset-password?token=%s", base, token)
		utils.SendPasswordResetEmail(user.Email, user.Username, link)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "If the email is registered, a reset link has been sent",
	})
}

func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ResetPasswordInput)

	db := database.DB
	var reset model.PasswordResetToken
	if err := db.Where("token = ?", input.Token).First(&reset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset link", err)
	}
	if !reset.IsValid(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset link", errors.New("token expired or used"))
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", reset.UserId).
			Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used", true).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Password has been reset",
	})
}
