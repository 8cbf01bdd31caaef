package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// RecurrencePolicy controls when the recurrence check appends a new budget.
type RecurrencePolicy string

const (
	// RecurrenceAlways appends an occurrence on every check, whether or not
	// the next occurrence date has been reached.
	RecurrenceAlways RecurrencePolicy = "always"
	// RecurrenceDue appends only once the next occurrence date is not after now.
	RecurrenceDue RecurrencePolicy = "due"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port   string
	APIKey string

	// Database
	DBDriver       string
	SQLitePath     string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	MigrationsPath string

	// Ledger
	RecurrencePolicy RecurrencePolicy
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env: getEnv("ENV", "development"),

		// Server
		Port:   getEnv("PORT", "8080"),
		APIKey: getEnv("API_KEY", ""),

		// Database
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		SQLitePath:     getEnv("SQLITE_PATH", "walletmate.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "walletmate"),
		DBPassword:     getEnv("DB_PASSWORD", "walletmate"),
		DBName:         getEnv("DB_NAME", "walletmate"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}

	config.RecurrencePolicy = ParseRecurrencePolicy(getEnv("RECURRENCE_POLICY", string(RecurrenceAlways)))

	appConfig = config
	return config, nil
}

// ParseRecurrencePolicy converts a raw setting into a policy, falling back to
// RecurrenceAlways for unknown values.
func ParseRecurrencePolicy(raw string) RecurrencePolicy {
	switch RecurrencePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case RecurrenceDue:
		return RecurrenceDue
	case RecurrenceAlways:
		return RecurrenceAlways
	default:
		log.Printf("Warning: invalid RECURRENCE_POLICY value '%s', falling back to always\n", raw)
		return RecurrenceAlways
	}
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
