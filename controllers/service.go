package controllers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

type serviceInfo struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// GetServices returns the service catalog with booked durations.
func GetServices(c *fiber.Ctx) error {
	services := make([]serviceInfo, 0, len(BookingConfig.ServiceMinutes))
	for name, minutes := range BookingConfig.ServiceMinutes {
		services = append(services, serviceInfo{Name: name, DurationMinutes: minutes})
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].Name < services[j].Name
	})
	return c.JSON(services)
}
