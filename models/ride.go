package models

import (
	"time"
)

// Ride is one completed (or in-progress, while end_time is null) bicycle
// trip. A ride belongs to exactly one user for its entire lifetime; deleting
// the user deletes their rides (FK cascade, see database.Migrate).
type Ride struct {
	ID         string     `json:"id" gorm:"primaryKey;size:191"`
	UserID     string     `json:"user_id" gorm:"not null;size:191;index"`
	StartTime  time.Time  `json:"start_time" gorm:"not null"`
	EndTime    *time.Time `json:"end_time"`
	DistanceKm float64    `json:"distance_km" gorm:"default:0"`
	CO2SavedKg float64    `json:"co2_saved_kg" gorm:"column:co2_saved_kg;default:0"`
	// Serialized coordinate list, interpreted only by clients
	RoutePoints string    `json:"route_points" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
