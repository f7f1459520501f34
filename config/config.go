package config

import (
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dine-booking-api/models"
)

// DB is the shared gorm handle, set by InitDB
var DB *gorm.DB

// Config holds the application configuration
type Config struct {
	Port          string
	DBPath        string
	UploadDir     string
	AllowedOrigin string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	AdminEmail    string // deprecated fixed-operator admin identity, kept for compatibility
}

// Load reads configuration from the environment (and .env if present)
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Port:          getEnv("PORT", "5000"),
		DBPath:        getEnv("DB_PATH", "dine_booking.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "https://dinekro.netlify.app"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// InitDB opens the sqlite store at path and migrates the schema
func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Booking{},
	); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	logrus.Info("database connected and migrated")
}
