package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DataDir       string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	Environment   string
	FetchDelay    time.Duration
}

// Load reads configuration from the environment, with an optional .env
// file on top. Every setting has a development default.
func Load() *Config {
	// .env file is optional, continue without it
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@artisanalcrafts.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		FetchDelay:    getEnvMillis("FETCH_DELAY_MS", 200),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvMillis(key string, defaultMs int) time.Duration {
	ms := defaultMs
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			ms = n
		}
	}
	return time.Duration(ms) * time.Millisecond
}
