package middleware

import (
	"errors"
	"net/http"

	"dine-booking-api/config"
	"dine-booking-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CallerEmailHeader carries the caller identity. No session layer exists,
// so privileged routes identify the caller by this header alone.
const CallerEmailHeader = "X-User-Email"

// AdminRequired re-resolves the caller's admin flag from the database on
// every request and rejects anyone whose flag is not exactly 1.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader(CallerEmailHeader)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Email is required for admin authentication"})
			return
		}

		var user models.User
		err := config.DB.Where("email = ?", email).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Error("admin authentication error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if err != nil || user.Admin != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied! Admins only."})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
