package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/priyanshsaraf/serenity-booking/controllers"
	"github.com/priyanshsaraf/serenity-booking/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())
	appointment.Get("/available-times", controllers.GetAvailableTimes)
	appointment.Get("/", controllers.GetMyAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Patch("/:id", controllers.UpdateAppointment)
	appointment.Delete("/:id", controllers.DeleteAppointment)
}
