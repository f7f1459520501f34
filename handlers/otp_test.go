package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"dine-booking-api/otp"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to      []string
	subject string
	body    string
	err     error
}

func (f *fakeSender) Send(to, subject, body string) error {
	f.to = append(f.to, to)
	f.subject = subject
	f.body = body
	return f.err
}

func setupOTP(t *testing.T) (*gin.Engine, *fakeSender) {
	t.Helper()
	r := setupRouter(t)
	sender := &fakeSender{}
	OTPStore = otp.NewStore()
	Mailer = sender
	return r, sender
}

func TestSendSignupOTP(t *testing.T) {
	r, sender := setupOTP(t)

	w := performJSON(r, http.MethodPost, "/signup/otp", gin.H{"email": "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"alice@example.com"}, sender.to)

	code, ok := OTPStore.Get("alice@example.com")
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), code)
	assert.Contains(t, sender.body, code, "mailed code must match the stored one")
	assert.Contains(t, sender.body, "valid for 5 minutes")
}

func TestSendSignupOTPMissingEmail(t *testing.T) {
	r, sender := setupOTP(t)

	w := performJSON(r, http.MethodPost, "/signup/otp", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.to, "no send attempt on a bad request")
}

func TestSendSignupOTPTransportFailure(t *testing.T) {
	r, sender := setupOTP(t)
	sender.err = errors.New("smtp: connection refused")

	w := performJSON(r, http.MethodPost, "/signup/otp", gin.H{"email": "alice@example.com"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendSignupOTPReissueOverwrites(t *testing.T) {
	r, _ := setupOTP(t)

	require.Equal(t, http.StatusOK, performJSON(r, http.MethodPost, "/signup/otp", gin.H{"email": "alice@example.com"}).Code)
	first, ok := OTPStore.Get("alice@example.com")
	require.True(t, ok)

	// issue until the code changes; identical re-rolls are possible but
	// a handful of attempts makes a stuck store obvious
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, performJSON(r, http.MethodPost, "/signup/otp", gin.H{"email": "alice@example.com"}).Code)
		if code, _ := OTPStore.Get("alice@example.com"); code != first {
			return
		}
	}
	t.Fatal("re-issue never replaced the stored code")
}
