package validate

import (
	"errors"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		db := database.DB
		var count int64
		db.Model(&model.User{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Username is already taken", errors.New("duplicate username"))
		}
		db.Model(&model.User{}).Where("email = ?", input.Email).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email is already registered", errors.New("duplicate email"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
