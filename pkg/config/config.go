// pkg/config/config.go
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
)

// DefaultConfigPath is used when DASHBOARD_CONFIG is not set
const DefaultConfigPath = "config.ini"

// Config represents the application configuration
type Config struct {
	// Database connection
	Database *DatabaseConfig `validate:"required"`

	// Logging
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
}

// LoadConfig loads the database section from the ini file at path and
// process settings from environment variables. A .env file in the working
// directory is applied to the environment first when present.
func LoadConfig(path string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	dbConfig, err := LoadDatabaseConfig(resolvePath(path))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Database:  dbConfig,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadValidatedDatabaseConfig loads and validates only the database section,
// resolving path and applying .env the same way LoadConfig does
func LoadValidatedDatabaseConfig(path string) (*DatabaseConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	dbConfig, err := LoadDatabaseConfig(resolvePath(path))
	if err != nil {
		return nil, err
	}

	if err := dbConfig.Validate(); err != nil {
		return nil, err
	}

	return dbConfig, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.Config("failed to load .env file", err)
	}
	return nil
}

func resolvePath(path string) string {
	if path == "" {
		return getEnv("DASHBOARD_CONFIG", DefaultConfigPath)
	}
	return path
}

var validate = validator.New()

// Validate checks the database section on its own
func (c *DatabaseConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperrors.Config("invalid database configuration", err)
	}
	return nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.Database == nil {
		return apperrors.Config("database configuration is required", nil)
	}

	if err := validate.Struct(c); err != nil {
		return apperrors.Config("invalid configuration", err)
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultSeconds)) * time.Second
}
