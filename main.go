package main

import (
	"log"

	"github.com/Taulan23/kino-system/config"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.ConnectRedis()

	sweeper := helper.StartShowtimeSweeper()
	defer sweeper.Stop()
	daily := helper.StartDailyJobs()
	if daily != nil {
		defer daily.Shutdown()
	}

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
