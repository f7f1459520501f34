package routes

import (
	"dine-booking-api/handlers"
	"dine-booking-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, uploadDir string) {
	// Auth + OTP
	r.POST("/signup", handlers.Signup)
	r.POST("/signup/otp", handlers.SendSignupOTP)
	r.POST("/login", handlers.Login)

	// Restaurants. The bare and /api listing routes are duplicates kept
	// for older clients.
	r.GET("/restaurants", handlers.ListRestaurants)
	r.GET("/api/restaurants", handlers.ListRestaurants)
	r.POST("/addRestaurant", handlers.AddRestaurant)
	r.DELETE("/api/delete-restaurant/:id", middleware.AdminRequired(), handlers.DeleteRestaurant)

	// Bookings
	r.POST("/confirmBooking", handlers.ConfirmBooking)

	// Uploaded restaurant images
	r.Static("/uploads", uploadDir)
}
