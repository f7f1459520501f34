package main

import (
	"net/http"
	"os"

	"dine-booking-api/config"
	"dine-booking-api/handlers"
	"dine-booking-api/mailer"
	"dine-booking-api/otp"
	"dine-booking-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	// Set Gin mode
	if mode := os.Getenv("GIN_MODE"); mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB(cfg.DBPath)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("failed to create upload dir: %v", err)
	}

	// Wire the OTP issuer and mail transport
	handlers.OTPStore = otp.NewStore()
	handlers.Mailer = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	handlers.UploadDir = cfg.UploadDir

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the single allowed frontend origin
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-User-Email")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Dine Booking API",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, cfg.UploadDir)

	logrus.Infof("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
