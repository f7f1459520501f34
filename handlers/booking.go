package handlers

import (
	"net/http"

	"dine-booking-api/config"
	"dine-booking-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ConfirmBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	People      int    `json:"people" binding:"required,min=1"`
	Contact     string `json:"contact" binding:"required"`
	TableNumber string `json:"tableNumber" binding:"required"`
	Restaurant  struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location"`
		Cost     string `json:"cost"`
		Rating   string `json:"rating"`
	} `json:"restaurant" binding:"required"`
}

// ConfirmBooking records a table booking. The restaurant details are
// copied into the booking as a snapshot rather than referenced by id, so
// later restaurant edits or deletions never touch past bookings.
func ConfirmBooking(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required!"})
		return
	}

	booking := models.Booking{
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		People:      req.People,
		Contact:     req.Contact,
		TableNumber: req.TableNumber,
		Restaurant: models.RestaurantSnapshot{
			Name:     req.Restaurant.Name,
			Location: req.Restaurant.Location,
			Cost:     req.Restaurant.Cost,
			Rating:   req.Restaurant.Rating,
		},
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		logrus.WithError(err).Error("error saving booking")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking Confirmed!", "booking": booking})
}
