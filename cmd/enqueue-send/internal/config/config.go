// Package config provides configuration management for the enqueue-send CLI.
// It loads settings from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the enqueue-send CLI.
type Config struct {
	Database DatabaseConfig
	Producer ProducerConfig
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Driver   string // mysql, postgres, sqlite3
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Prefix   string // Table prefix (default: "enqueue_")
}

// ProducerConfig holds producer-level default values.
// Zero means no default.
type ProducerConfig struct {
	Priority      int   // Default message priority
	DeliveryDelay int64 // Default delivery delay in milliseconds
	TimeToLive    int64 // Default time to live in milliseconds
}

// Load loads configuration from environment variables.
// Follows 12-factor app principles - configuration via environment.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "enqueue"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "enqueue"),
			Prefix:   getEnv("DB_PREFIX", "enqueue_"),
		},
		Producer: ProducerConfig{
			Priority:      getEnvInt("ENQUEUE_DEFAULT_PRIORITY", 0),
			DeliveryDelay: int64(getEnvInt("ENQUEUE_DEFAULT_DELAY_MS", 0)),
			TimeToLive:    int64(getEnvInt("ENQUEUE_DEFAULT_TTL_MS", 0)),
		},
	}

	// SQLite connects to a file, everything else needs credentials
	if cfg.Database.Driver != "sqlite3" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is required")
	}

	return cfg, nil
}

// GetDSN returns the database connection string based on driver.
func (c *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(c.Driver) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.Port, c.Database)
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Database)
	case "sqlite3":
		return c.Database // SQLite uses file path as DSN
	default:
		return ""
	}
}

// getEnv retrieves environment variable or returns default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
