package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"copbike-api/models"
)

type ChallengeController struct {
	db *gorm.DB
}

func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{db: db}
}

// GetChallenges lists every community challenge, earliest start_date first.
// Challenges are authored through the admin tooling only; there is no write
// path here.
func (cc *ChallengeController) GetChallenges(c *gin.Context) {
	var challenges []models.CommunityChallenge
	if err := cc.db.Order("start_date ASC").Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
		return
	}

	c.JSON(http.StatusOK, challenges)
}
