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

func GetAllMovies(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.FilterMovieInput)

	db := database.DB
	query := db.Model(&model.Movie{}).Preload("Genres").Where("movies.is_active = ?", true)
	if filter.GenreId != 0 {
		query = query.Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
			Where("movie_genres.genre_id = ?", filter.GenreId)
	}
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	switch filter.Sort {
	case "title":
		query = query.Order("title")
	case "rating":
		query = query.Order("rating DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var totalCount int64
	query.Count(&totalCount)

	var movies []model.Movie
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movies,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetMovieBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var movie model.Movie
	if err := database.DB.Preload("Genres").Where("slug = ?", slug).First(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var reviews []model.Review
	database.DB.Preload("User").
		Where("movie_id = ? AND is_approved = ?", movie.ID, true).
		Order("created_at DESC").Find(&reviews)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"movie":   movie,
		"reviews": reviews,
	})
}

func CreateMovie(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMovieInput)

	db := database.DB
	movie := model.Movie{
		Title:          input.Title,
		Description:    input.Description,
		Duration:       input.Duration,
		ReleaseDate:    input.ReleaseDate,
		Director:       input.Director,
		Cast:           input.Cast,
		Rating:         input.Rating,
		AgeRestriction: input.AgeRestriction,
		PosterURL:      input.PosterURL,
		TrailerURL:     input.TrailerURL,
		IsActive:       true,
	}
	if input.IsActive != nil {
		movie.IsActive = *input.IsActive
	}
	movie.Slug = helper.GenerateUniqueMovieSlug(db, input.Title)

	if len(input.GenreIDs) > 0 {
		if err := db.Find(&movie.Genres, input.GenreIDs).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown genre", err)
		}
	}

	if err := db.Create(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func UpdateMovie(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateMovieInput)

	db := database.DB
	var movie model.Movie
	if err := db.Preload("Genres").First(&movie, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&movie, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.IsActive != nil {
		movie.IsActive = *input.IsActive
	}
	if input.Title != nil {
		movie.Slug = helper.GenerateUniqueMovieSlug(db.Where("id <> ?", movie.ID), *input.Title)
	}

	if err := db.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.GenreIDs != nil {
		var genres []model.Genre
		if err := db.Find(&genres, input.GenreIDs).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown genre", err)
		}
		if err := db.Model(&movie).Association("Genres").Replace(genres); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	result := database.DB.Delete(&model.Movie{}, movieId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Movie deleted"})
}

func GetAllGenres(c *fiber.Ctx) error {
	var genres []model.Genre
	if err := database.DB.Order("name").Find(&genres).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}
