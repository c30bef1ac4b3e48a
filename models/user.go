package models

import (
	"time"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	AvatarURL    string        `json:"avatar_url,omitempty"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
