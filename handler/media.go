package handler

import (
	"errors"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/utils"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// UploadImage pushes an admin-supplied image (poster, promo banner,
// cinema photo) to Cloudinary and returns the hosted URL.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	defer file.Close()

	folder := c.FormValue("folder", "kino")
	result, err := helper.Cloudinary().Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url":      result.SecureURL,
		"publicId": result.PublicID,
	})
}
