package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/priyanshsaraf/serenity-booking/cron"
	"github.com/priyanshsaraf/serenity-booking/db"
	"github.com/priyanshsaraf/serenity-booking/redis"
	"github.com/priyanshsaraf/serenity-booking/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Serenity Booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupAppointmentRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
