package router

import (
	"github.com/Taulan23/kino-system/handler"
	"github.com/Taulan23/kino-system/middleware"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/validate"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/forgot-password", validate.Body[model.ForgotPasswordInput](), handler.ForgotPassword)
	auth.Post("/reset-password", validate.Body[model.ResetPasswordInput](), handler.ResetPassword)

	city := v1.Group("/city")
	city.Get("/", handler.GetAllCities)
	city.Post("/:cityId/select", validate.GetById("cityId"), handler.SelectCity)
	city.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.Body[model.City](), handler.CreateCity)
	city.Delete("/:cityId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("cityId"), handler.DeleteCity)

	movie := v1.Group("/movie")
	movie.Get("/", validate.Query[model.FilterMovieInput](), handler.GetAllMovies)
	movie.Get("/genres", handler.GetAllGenres)
	movie.Get("/:slug", handler.GetMovieBySlug)
	movie.Post("/:movieId/review", middleware.Protected(), validate.GetById("movieId"), validate.Body[model.CreateReviewInput](), handler.CreateReview)
	movie.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.Body[model.CreateMovieInput](), handler.CreateMovie)
	movie.Put("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("movieId"), validate.Body[model.UpdateMovieInput](), handler.UpdateMovie)
	movie.Delete("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("movieId"), handler.DeleteMovie)

	showtime := v1.Group("/showtime")
	showtime.Get("/", validate.Query[model.FilterShowTimeInput](), handler.GetAllShowTimes)
	showtime.Get("/:showtimeId/seats", validate.GetById("showtimeId"), handler.GetShowTimeSeats)
	showtime.Post("/:showtimeId/book", middleware.Protected(), validate.GetById("showtimeId"), validate.BookTicket(), handler.BookTicket)
	showtime.Get("/:showtimeId/feed", websocket.New(handler.SeatFeed))
	showtime.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateShowTime(), handler.CreateShowTime)
	showtime.Put("/:showtimeId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("showtimeId"), validate.Body[model.UpdateShowTimeInput](), handler.UpdateShowTime)
	showtime.Delete("/:showtimeId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("showtimeId"), handler.DeleteShowTime)

	cinema := v1.Group("/cinema")
	cinema.Get("/", handler.GetAllCinemas)
	cinema.Get("/:cinemaId", validate.GetById("cinemaId"), handler.GetCinemaById)
	cinema.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.Body[model.CreateCinemaInput](), handler.CreateCinema)
	cinema.Put("/:cinemaId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("cinemaId"), validate.Body[model.UpdateCinemaInput](), handler.UpdateCinema)
	cinema.Delete("/:cinemaId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("cinemaId"), handler.DeleteCinema)

	hall := v1.Group("/hall")
	hall.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateHall(), handler.CreateHall)
	hall.Put("/:hallId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("hallId"), validate.Body[model.UpdateHallInput](), handler.UpdateHall)
	hall.Delete("/:hallId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("hallId"), handler.DeleteHall)

	promotion := v1.Group("/promotion")
	promotion.Get("/", handler.GetActivePromotions)
	promotion.Get("/all", middleware.Protected(), middleware.AdminOnly(), handler.GetAllPromotions)
	promotion.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.Body[model.CreatePromotionInput](), handler.CreatePromotion)
	promotion.Put("/:promotionId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("promotionId"), validate.Body[model.UpdatePromotionInput](), handler.UpdatePromotion)
	promotion.Delete("/:promotionId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("promotionId"), handler.DeletePromotion)

	rule := v1.Group("/rules")
	rule.Get("/", handler.GetAllRules)
	rule.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.Body[model.CreateRuleInput](), handler.CreateRule)
	rule.Put("/:ruleId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("ruleId"), validate.Body[model.UpdateRuleInput](), handler.UpdateRule)
	rule.Delete("/:ruleId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("ruleId"), handler.DeleteRule)

	profile := v1.Group("/profile", middleware.Protected())
	profile.Get("/", handler.GetProfile)
	profile.Put("/", validate.Body[model.UpdateProfileInput](), handler.UpdateProfile)
	profile.Post("/change-password", validate.Body[model.ChangePasswordInput](), handler.ChangePassword)

	ticket := v1.Group("/ticket", middleware.Protected())
	ticket.Get("/my", handler.GetMyTickets)
	ticket.Post("/:ticketId/cancel", validate.GetById("ticketId"), handler.CancelTicket)
	ticket.Get("/:ticketId/qr", validate.GetById("ticketId"), handler.GetTicketQR)

	review := v1.Group("/review", middleware.Protected())
	review.Get("/my", handler.GetMyReviews)
	review.Delete("/:reviewId", validate.GetById("reviewId"), handler.DeleteMyReview)

	staff := v1.Group("/staff", middleware.Protected(), middleware.StaffOnly())
	staff.Get("/showtimes/today", handler.GetTodayShowtimes)
	staff.Get("/showtime/:showtimeId/seats", validate.GetById("showtimeId"), handler.GetStaffSeatMap)
	staff.Post("/showtime/:showtimeId/book", validate.GetById("showtimeId"), validate.BookTicket(), handler.StaffBookTicket)
	staff.Get("/ticket/check/:code", handler.CheckTicket)
	staff.Get("/reviews", validate.Query[model.FilterReviewInput](), handler.GetAllReviews)
	staff.Patch("/review/:reviewId/toggle", validate.GetById("reviewId"), handler.ToggleReviewApproval)
	staff.Delete("/review/:reviewId", validate.GetById("reviewId"), handler.DeleteReview)

	admin := v1.Group("/admin", middleware.Protected(), middleware.AdminOnly())
	admin.Get("/users", handler.GetAllUsers)
	admin.Post("/users", validate.Body[model.AdminCreateUserInput](), handler.CreateUser)
	admin.Put("/users/:userId", validate.GetById("userId"), validate.Body[model.AdminUpdateUserInput](), handler.UpdateUser)
	admin.Post("/users/:userId/reset-password", validate.GetById("userId"), validate.Body[model.AdminResetPasswordInput](), handler.ResetUserPassword)
	admin.Delete("/users/:userId", validate.GetById("userId"), handler.DeleteUser)
	admin.Get("/tickets", validate.Query[model.FilterTicketInput](), handler.GetAllTickets)
	admin.Post("/upload", handler.UploadImage)
	admin.Get("/statistics/summary", handler.GetStatisticSummary)
	admin.Get("/statistics/movies", handler.GetSalesByMovie)
	admin.Get("/statistics/cinemas", handler.GetSalesByCinema)
	admin.Get("/statistics/daily", handler.GetSalesByDay)
}
