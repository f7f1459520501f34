package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dine-booking-api/config"
	"dine-booking-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListRestaurants returns every restaurant. Registered under both
// /restaurants and /api/restaurants for older clients.
func ListRestaurants(c *gin.Context) {
	restaurants := []models.Restaurant{} // marshal as [] even when empty
	if err := config.DB.Find(&restaurants).Error; err != nil {
		logrus.WithError(err).Error("error fetching restaurants")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// AddRestaurant creates a restaurant from a multipart form, optionally
// storing one image. The image is validated and saved before the row is
// written, so a bad file never leaves a half-created restaurant.
func AddRestaurant(c *gin.Context) {
	name := c.PostForm("name")
	location := c.PostForm("location")
	table := c.PostForm("table")
	costStr := c.PostForm("cost")
	ratingStr := c.PostForm("rating")

	if name == "" || location == "" || table == "" || costStr == "" || ratingStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required..."})
		return
	}

	cost, err := strconv.ParseFloat(costStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cost value"})
		return
	}
	rating, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rating value"})
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = saveRestaurantImage(c, file)
		if errors.Is(err, ErrNotImage) || errors.Is(err, ErrImageTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("error storing restaurant image")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
			return
		}
	}

	var existing models.Restaurant
	if err := config.DB.Where("name = ? AND location = ?", name, location).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant already exists!"})
		return
	}

	restaurant := models.Restaurant{
		Name:     name,
		Location: location,
		Table:    table,
		Cost:     cost,
		Rating:   rating,
		ImageURL: imageURL,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		logrus.WithError(err).Error("error adding restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Restaurant added successfully",
		"restaurant": gin.H{
			"name":     restaurant.Name,
			"location": restaurant.Location,
			"table":    restaurant.Table,
			"cost":     restaurant.Cost,
			"rating":   restaurant.Rating,
			"imageUrl": restaurant.ImageURL,
		},
	})
}

// DeleteRestaurant removes one restaurant by id. AdminRequired runs first;
// by the time we get here the caller is known to be an admin. Any image the
// restaurant referenced stays on disk.
func DeleteRestaurant(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	err := config.DB.First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("error deleting restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := config.DB.Delete(&restaurant).Error; err != nil {
		logrus.WithError(err).Error("error deleting restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}
