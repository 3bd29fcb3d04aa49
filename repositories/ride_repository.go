package repositories

import (
	"gorm.io/gorm"

	"copbike-api/models"
)

type RideRepository struct {
	db *gorm.DB
}

func NewRideRepository(db *gorm.DB) *RideRepository {
	return &RideRepository{db: db}
}

// UserTotal is one row of the grouped leaderboard sum.
type UserTotal struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	TotalDistanceKm float64 `json:"total_distance_km"`
}

// ListAll returns every ride, newest start first, with the owner loaded.
func (r *RideRepository) ListAll() ([]models.Ride, error) {
	var rides []models.Ride
	err := r.db.Preload("User").Order("start_time DESC").Find(&rides).Error
	return rides, err
}

// ListByUser returns one user's rides, newest start first.
func (r *RideRepository) ListByUser(userID string) ([]models.Ride, error) {
	var rides []models.Ride
	err := r.db.Where("user_id = ?", userID).Order("start_time DESC").Find(&rides).Error
	return rides, err
}

func (r *RideRepository) Create(ride *models.Ride) error {
	return r.db.Create(ride).Error
}

// TotalsByUser sums distance per owner across the whole rides table. Users
// without rides produce no group and therefore no row. Ties on total
// distance order by user id so the result is reproducible.
func (r *RideRepository) TotalsByUser() ([]UserTotal, error) {
	var totals []UserTotal
	err := r.db.Model(&models.Ride{}).
		Select("users.id AS user_id, users.username AS username, SUM(rides.distance_km) AS total_distance_km").
		Joins("JOIN users ON users.id = rides.user_id").
		Group("users.id, users.username").
		Order("total_distance_km DESC, user_id ASC").
		Scan(&totals).Error
	return totals, err
}

// SumsForUser sums distance and CO2 for a single user. Unlike TotalsByUser,
// a user with no rides yields zeros here, not an absent row.
func (r *RideRepository) SumsForUser(userID string) (distanceKm, co2SavedKg float64, err error) {
	var sums struct {
		DistanceKm float64 `gorm:"column:distance_km"`
		CO2SavedKg float64 `gorm:"column:co2_saved_kg"`
	}
	err = r.db.Model(&models.Ride{}).
		Select("COALESCE(SUM(distance_km), 0) AS distance_km, COALESCE(SUM(co2_saved_kg), 0) AS co2_saved_kg").
		Where("user_id = ?", userID).
		Scan(&sums).Error
	return sums.DistanceKm, sums.CO2SavedKg, err
}
