package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/priyanshsaraf/serenity-booking/controllers"
)

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	app.Get("/services", controllers.GetServices)
}
