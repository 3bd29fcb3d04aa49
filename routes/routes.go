package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"copbike-api/config"
	"copbike-api/controllers"
	"copbike-api/middleware"
	"copbike-api/services"
)

// SetupCORS allows the mobile/web clients to talk to the API from any origin.
func SetupCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	})
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	rideController := controllers.NewRideController(db)
	challengeController := controllers.NewChallengeController(db)
	rankingController := controllers.NewRankingController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		rides := protected.Group("/rides")
		{
			rides.GET("/", rideController.GetRides)
			rides.POST("/", rideController.CreateRide)
		}

		challenges := protected.Group("/challenges")
		{
			challenges.GET("/", challengeController.GetChallenges)
		}

		ranking := protected.Group("/ranking")
		{
			ranking.GET("/", rankingController.GetRanking)
		}

		profile := protected.Group("/profile")
		{
			profile.GET("/", rankingController.GetProfile)
		}
	}
}
