package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabasePath string
	Environment  string
	BunDebug     bool

	// JWT
	JWTSecret      string
	AccessTokenTTL time.Duration

	// Government signup verification
	GovVerificationCode string

	// Uploads
	UploadDir     string
	MaxUploadSize int64

	// Static pages
	WebDir string

	// CORS
	AllowedOrigins []string
}

// Load loads environment variables and returns a Config struct
func Load() *Config {
	_ = godotenv.Load()

	accessTTLMin, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "720"))

	allowedOrigins := strings.Split(
		getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		",",
	)

	return &Config{
		Port:                getEnv("APP_PORT", "3000"),
		DatabasePath:        getEnv("DATABASE_PATH", "istanfix.db"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		BunDebug:            getEnvAsBool("BUNDEBUG", false),
		JWTSecret:           getEnv("JWT_SECRET", "dev-only-change-me"),
		AccessTokenTTL:      time.Duration(accessTTLMin) * time.Minute,
		GovVerificationCode: getEnv("GOV_VERIFICATION_CODE", "GOV2024"),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSize:       getEnvAsInt64("MAX_UPLOAD_BYTES", 5*1024*1024),
		WebDir:              getEnv("WEB_DIR", "web"),
		AllowedOrigins:      allowedOrigins,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvAsInt64(key string, fallback int64) int64 {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return fallback
	}
	return val
}
