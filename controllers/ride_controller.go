package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"copbike-api/models"
	"copbike-api/repositories"
)

type RideController struct {
	db       *gorm.DB
	rideRepo *repositories.RideRepository
}

func NewRideController(db *gorm.DB) *RideController {
	return &RideController{
		db:       db,
		rideRepo: repositories.NewRideRepository(db),
	}
}

// CreateRideRequest deliberately has no user field: the owner is always the
// authenticated caller, whatever the client sends.
type CreateRideRequest struct {
	DistanceKm  float64    `json:"distance_km" binding:"gte=0"`
	CO2SavedKg  float64    `json:"co2_saved_kg" binding:"gte=0"`
	EndTime     *time.Time `json:"end_time"`
	RoutePoints string     `json:"route_points"`
}

// RideResponse mirrors the ride row with the owner flattened to a username.
type RideResponse struct {
	ID          string     `json:"id"`
	User        string     `json:"user"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	DistanceKm  float64    `json:"distance_km"`
	CO2SavedKg  float64    `json:"co2_saved_kg"`
	RoutePoints string     `json:"route_points"`
}

func toRideResponse(ride models.Ride, username string) RideResponse {
	return RideResponse{
		ID:          ride.ID,
		User:        username,
		StartTime:   ride.StartTime,
		EndTime:     ride.EndTime,
		DistanceKm:  ride.DistanceKm,
		CO2SavedKg:  ride.CO2SavedKg,
		RoutePoints: ride.RoutePoints,
	}
}

// GetRides lists every ride, newest start_time first.
func (rc *RideController) GetRides(c *gin.Context) {
	rides, err := rc.rideRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rides"})
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		response = append(response, toRideResponse(ride, ride.User.Username))
	}

	c.JSON(http.StatusOK, response)
}

// CreateRide records a ride for the authenticated caller. start_time is set
// server-side at creation and never changes afterwards.
func (rc *RideController) CreateRide(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := rc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ride := models.Ride{
		ID:          uuid.New().String(),
		UserID:      userID,
		StartTime:   time.Now(),
		EndTime:     req.EndTime,
		DistanceKm:  req.DistanceKm,
		CO2SavedKg:  req.CO2SavedKg,
		RoutePoints: req.RoutePoints,
	}

	if err := rc.rideRepo.Create(&ride); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ride"})
		return
	}

	c.JSON(http.StatusCreated, toRideResponse(ride, user.Username))
}
