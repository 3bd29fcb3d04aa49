package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"copbike-api/services"
)

type RankingController struct {
	aggregation *services.AggregationService
}

func NewRankingController(db *gorm.DB) *RankingController {
	return &RankingController{
		aggregation: services.NewAggregationService(db),
	}
}

// GetRanking returns the community leaderboard, most distance first.
func (rc *RankingController) GetRanking(c *gin.Context) {
	entries, err := rc.aggregation.ComputeRanking()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute ranking"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetProfile returns the caller's identity, aggregated totals and ride
// history.
func (rc *RankingController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := rc.aggregation.ComputeProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
