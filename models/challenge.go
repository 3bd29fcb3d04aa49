package models

import (
	"time"
)

// CommunityChallenge is an admin-authored event. The user-facing API only
// ever reads these; rows are created through seeding or the ops tooling.
type CommunityChallenge struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null;size:200"`
	Description  string    `json:"description" gorm:"not null;type:text"`
	StartDate    Date      `json:"start_date" gorm:"not null;index"`
	EndDate      Date      `json:"end_date" gorm:"not null"`
	LocationName string    `json:"location_name" gorm:"not null;size:255;default:'Belém, PA'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
