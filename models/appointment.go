package models

import (
	"time"

	"github.com/priyanshsaraf/serenity-booking/scheduling"
	"gorm.io/gorm"
)

// Appointment is one booked service slot. StartTime and EndTime are stored
// as 24-hour "HH:MM" strings; EndTime is always derived from the service
// duration, never taken from the caller.
type Appointment struct {
	gorm.Model
	Service      string    `json:"service"`
	Date         time.Time `json:"date" gorm:"type:date"`
	StartTime    string    `json:"start_time"` // "HH:MM" in 24h
	EndTime      string    `json:"end_time"`   // "HH:MM" in 24h
	Notes        string    `json:"notes"`
	ReminderSent bool      `json:"reminder_sent" gorm:"default:false"`
	ClientID     uint      `json:"client_id"`
	Client       *User     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// Interval parses the stored times into a half-open interval for conflict
// checks.
func (a *Appointment) Interval() (scheduling.Interval, error) {
	start, err := scheduling.ParseTimeOfDay(a.StartTime)
	if err != nil {
		return scheduling.Interval{}, err
	}
	end, err := scheduling.ParseTimeOfDay(a.EndTime)
	if err != nil {
		return scheduling.Interval{}, err
	}
	return scheduling.Interval{Start: start, End: end}, nil
}
