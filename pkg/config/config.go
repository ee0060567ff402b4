package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTExpiry   time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			expiry = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:   expiry,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
