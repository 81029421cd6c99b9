package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AdminJWTSecret string // Required: HS256 secret for the admin bearer token

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./newswire.db)
	PepperFile          string        // Optional: path to file containing pepper for secret hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	CORSOrigins          []string // Allowed cross-origin origins; empty disables CORS
	CORSMethods          []string // Optional: allowed cross-origin methods
	CORSHeaders          []string // Optional: allowed cross-origin request headers
	CORSAllowCredentials bool     // Whether cross-origin requests may carry credentials (default: false)
}

func LoadConfig() Config {
	return Config{
		AdminJWTSecret:      os.Getenv("NEWSWIRE_ADMIN_JWT_SECRET"),
		DatabaseFile:        getEnvOrDefault("NEWSWIRE_DATABASE_FILE", "newswire.db"),
		PepperFile:          getEnvOrDefault("NEWSWIRE_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		CORSOrigins:          getEnvList("NEWSWIRE_CORS_ORIGINS"),
		CORSMethods:          getEnvList("NEWSWIRE_CORS_METHODS"),
		CORSHeaders:          getEnvList("NEWSWIRE_CORS_HEADERS"),
		CORSAllowCredentials: getEnvBoolOrDefault("NEWSWIRE_CORS_ALLOW_CREDENTIALS", false),
	}
}

// getEnvList splits a comma-separated env var, dropping empty entries.
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
