package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed per request from the rides table, never persisted
	TotalDistanceKm float64 `json:"total_distance_km" gorm:"-"`
	TotalCO2SavedKg float64 `json:"total_co2_saved_kg" gorm:"-"`

	Rides []Ride `json:"rides,omitempty" gorm:"foreignKey:UserID"`
}
