package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig
	Mock    MockConfig
	Session SessionConfig
	Log     LogConfig
}

// APIConfig holds the real backend configuration
type APIConfig struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// MockConfig holds the mock endpoint set configuration
type MockConfig struct {
	BaseURL string
	Enabled bool
}

// SessionConfig holds the persisted auth state configuration
type SessionConfig struct {
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string
	Environment string
}

// Load loads configuration from a .env file (when present) and environment
// variables
func Load() (*Config, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL:        getEnv("VETCONNECT_API_URL", "http://localhost:8080"),
			ConnectTimeout: getEnvAsDuration("VETCONNECT_CONNECT_TIMEOUT", 30*time.Second),
			RequestTimeout: getEnvAsDuration("VETCONNECT_REQUEST_TIMEOUT", 30*time.Second),
		},
		Mock: MockConfig{
			BaseURL: getEnv("VETCONNECT_MOCK_URL", "http://localhost:8090"),
			Enabled: getEnvAsBool("VETCONNECT_USE_MOCK", true),
		},
		Session: SessionConfig{
			Path: getEnv("VETCONNECT_SESSION_PATH", defaultSessionPath()),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: getEnv("APP_ENV", "development"),
		},
	}, nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".vetconnect/session.json"
	}
	return dir + "/vetconnect/session.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
