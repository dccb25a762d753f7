// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime configuration for the server process.
type Config struct {
	Port int

	// SessionTTL is the fixed lifetime of every issued session token.
	// Sessions never slide; expiry is set once at issue time.
	SessionTTL time.Duration

	CORSAllowOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	port, _ := strconv.Atoi(GetEnvOrDefault("PORT", "8080"))

	return &Config{
		Port:             port,
		SessionTTL:       getEnvDuration("SESSION_TTL", time.Hour),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173"}),
		ReadTimeout:      getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:     getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:      getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
	}
}

// GetEnvOrDefault retrieves an environment variable or returns a default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
