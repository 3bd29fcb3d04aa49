package services

import (
	"copbike-api/models"
	"copbike-api/repositories"

	"gorm.io/gorm"
)

// AggregationService computes the derived, read-only views over the rides
// table: the community ranking and the caller's profile summary. Both are
// recomputed from committed rows on every call; nothing is cached or
// materialized, so readers always see whatever is committed at query time.
type AggregationService struct {
	db       *gorm.DB
	rideRepo *repositories.RideRepository
}

func NewAggregationService(db *gorm.DB) *AggregationService {
	return &AggregationService{
		db:       db,
		rideRepo: repositories.NewRideRepository(db),
	}
}

// RankingEntry is one leaderboard row.
type RankingEntry struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	TotalDistanceKm float64 `json:"total_distance_km"`
}

// Profile is a user's identity plus their aggregated totals and ride history.
type Profile struct {
	ID              string        `json:"id"`
	Username        string        `json:"username"`
	Email           string        `json:"email"`
	TotalDistanceKm float64       `json:"total_distance_km"`
	TotalCO2SavedKg float64       `json:"total_co2_saved_kg"`
	Rides           []models.Ride `json:"rides"`
}

// ComputeRanking returns users ordered by summed ride distance, most first.
// A user with no rides contributes no row; ties order by user id ascending.
func (s *AggregationService) ComputeRanking() ([]RankingEntry, error) {
	totals, err := s.rideRepo.TotalsByUser()
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(totals))
	for _, total := range totals {
		entries = append(entries, RankingEntry(total))
	}

	return entries, nil
}

// ComputeProfile sums the user's distance and CO2 over their rides. A user
// with no rides gets zero totals here, it is only the ranking that omits
// them entirely.
func (s *AggregationService) ComputeProfile(userID string) (*Profile, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	distanceKm, co2SavedKg, err := s.rideRepo.SumsForUser(userID)
	if err != nil {
		return nil, err
	}

	rides, err := s.rideRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		TotalDistanceKm: distanceKm,
		TotalCO2SavedKg: co2SavedKg,
		Rides:           rides,
	}, nil
}
