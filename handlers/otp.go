package handlers

import (
	"fmt"
	"net/http"

	"dine-booking-api/mailer"
	"dine-booking-api/otp"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Wired in main; tests swap in fakes.
var (
	OTPStore *otp.Store
	Mailer   mailer.Sender
)

type SendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// SendSignupOTP issues a fresh code for the given email and mails it.
// The code is stored before the send so a delivered mail always matches
// a live entry. Nothing reads the code back yet; there is no verification
// endpoint.
func SendSignupOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	code := otp.Generate()
	OTPStore.Put(req.Email, code)

	body := fmt.Sprintf("Your OTP is %s. It is valid for 5 minutes.", code)
	if err := Mailer.Send(req.Email, "Your OTP for Seamless Dine", body); err != nil {
		logrus.WithError(err).WithField("email", req.Email).Error("failed to send OTP")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email!"})
}
