package handler

import (
	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
)

// CreateReview stores one review per user per movie; a second submit is
// rejected with a warning.
func CreateReview(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}
	input := c.Locals("input").(model.CreateReviewInput)

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var existing int64
	db.Model(&model.Review{}).
		Where("movie_id = ? AND user_id = ?", movie.ID, claim.UserId).Count(&existing)
	if existing > 0 {
		return utils.WarningResponse(c, fiber.StatusConflict, "You have already reviewed this movie")
	}

	review := model.Review{
		MovieId:    movie.ID,
		UserId:     claim.UserId,
		Rating:     input.Rating,
		Text:       input.Text,
		IsApproved: true,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func GetMyReviews(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}

	var reviews []model.Review
	err := database.DB.Preload("Movie").
		Where("user_id = ?", claim.UserId).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

// DeleteMyReview removes the caller's own review.
func DeleteMyReview(c *fiber.Ctx) error {
	reviewId := c.Locals("inputId").(int)
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}

	db := database.DB
	var review model.Review
	if err := db.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if review.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You can only delete your own reviews", nil)
	}
	if err := db.Delete(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Review deleted"})
}

// staff moderation

func GetAllReviews(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterReviewInput)

	db := database.DB
	query := db.Model(&model.Review{}).Preload("Movie").Preload("User")
	switch filter.Status {
	case "pending":
		query = query.Where("is_approved = ?", false)
	case "approved":
		query = query.Where("is_approved = ?", true)
	}

	var totalCount int64
	query.Count(&totalCount)

	var reviews []model.Review
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       reviews,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// ToggleReviewApproval flips a review between approved and hidden.
func ToggleReviewApproval(c *fiber.Ctx) error {
	reviewId := c.Locals("inputId").(int)

	db := database.DB
	var review model.Review
	if err := db.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if err := db.Model(&review).Update("is_approved", !review.IsApproved).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, review)
}

func DeleteReview(c *fiber.Ctx) error {
	reviewId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.Review{}, reviewId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Review deleted"})
}
