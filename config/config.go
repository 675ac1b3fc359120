// Package config loads the process configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Port the API server listens on.
	Port string
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string
	// WebPort the frontend server listens on.
	WebPort string
	// InternalAPIBase is the API address the web server fetches from.
	InternalAPIBase string
	// PublicAPIBase is the API address advertised to browsers.
	PublicAPIBase string
	// WebOrigin is the frontend origin allowed by CORS.
	WebOrigin string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; real environment variables win over it.
// DATABASE_URL may be empty: the web frontend runs without one, the API
// entrypoint refuses to start.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "4000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		WebPort:         getEnv("WEB_PORT", "3000"),
		InternalAPIBase: getEnv("INTERNAL_API_BASE", "http://localhost:4000"),
		PublicAPIBase:   getEnv("PUBLIC_API_BASE", "http://localhost:4000"),
		WebOrigin:       getEnv("WEB_ORIGIN", "http://localhost:3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
