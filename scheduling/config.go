package scheduling

import "time"

// Config holds the business rules the validator and slot calculator run
// against. It is treated as immutable once built; tests and future tenants
// construct their own instead of mutating the default.
type Config struct {
	OpenTime       TimeOfDay
	CloseTime      TimeOfDay
	OpenDays       map[time.Weekday]bool
	SlotInterval   int // minutes between candidate slot starts
	LeadTime       time.Duration
	ServiceMinutes map[string]int
	DefaultMinutes int // used when a service is not in the table
}

// DefaultConfig is the studio's fixed schedule: Mon-Fri, 9 AM to 5 PM,
// 15 minute slot grid, bookings at least 24 hours out.
func DefaultConfig() Config {
	return Config{
		OpenTime:  9 * 60,
		CloseTime: 17 * 60,
		OpenDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		},
		SlotInterval: 15,
		LeadTime:     24 * time.Hour,
		ServiceMinutes: map[string]int{
			"Extraction":     30,
			"Spray Tan":      45,
			"Hair Removal":   60,
			"Chemical Peel":  30,
			"Acne Treatment": 45,
		},
		DefaultMinutes: 30,
	}
}

// Duration returns the booked length of a service in minutes.
func (c Config) Duration(service string) int {
	if minutes, ok := c.ServiceMinutes[service]; ok {
		return minutes
	}
	return c.DefaultMinutes
}

// IsOpenOn reports whether the business takes appointments on that weekday.
func (c Config) IsOpenOn(day time.Weekday) bool {
	return c.OpenDays[day]
}
