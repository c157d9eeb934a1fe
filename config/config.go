package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"daily-delivery-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// List query defaults shared by every resource
const (
	DefaultPageSize  = 10
	MaxPageSize      = 100
	DefaultSortField = "updatedAt"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present; real env vars win
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
}

// StaffAPIKey gates the management surface; empty disables the gate
func StaffAPIKey() string {
	return os.Getenv("STAFF_API_KEY")
}

// AccessKeyTTL is the customer access-key lifetime
func AccessKeyTTL() time.Duration {
	days, err := strconv.Atoi(getEnv("ACCESS_KEY_TTL_DAYS", "30"))
	if err != nil || days < 1 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

// IsRelease reports whether we run in release mode (suppresses error detail)
func IsRelease() bool {
	return getEnv("GIN_MODE", "debug") == "release"
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "daily_delivery.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
