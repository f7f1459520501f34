package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"dine-booking-api/config"
	"dine-booking-api/middleware"
	"dine-booking-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupRouter gives each test a fresh in-memory store and a router with
// the same route table the server registers.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.InitDB(":memory:")
	sqlDB, err := config.DB.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	UploadDir = t.TempDir()

	r := gin.New()
	r.POST("/signup", Signup)
	r.POST("/signup/otp", SendSignupOTP)
	r.POST("/login", Login)
	r.GET("/restaurants", ListRestaurants)
	r.GET("/api/restaurants", ListRestaurants)
	r.POST("/addRestaurant", AddRestaurant)
	r.DELETE("/api/delete-restaurant/:id", middleware.AdminRequired(), DeleteRestaurant)
	r.POST("/confirmBooking", ConfirmBooking)
	return r
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, email, username, password string, admin int) models.User {
	t.Helper()
	user := models.User{Email: email, Username: username, Password: password, Admin: admin}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

// multipartBody builds an /addRestaurant form, optionally attaching a file.
func multipartBody(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, fileName))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func performMultipart(r *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
