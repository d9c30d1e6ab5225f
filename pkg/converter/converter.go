// pkg/converter/converter.go
package converter

import (
	"time"

	"go.uber.org/zap"
)

// TypeConverter turns driver values into typed candidate fields
type TypeConverter struct {
	logger *zap.Logger
	// Configuration options
	config TypeConverterConfig
}

// TypeConverterConfig provides configuration options for type conversion
type TypeConverterConfig struct {
	// Location applied to text timestamps without a zone
	Location *time.Location
	// Whether "null"/"NULL" text in numeric and time columns is treated as NULL
	NullLiterals bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() TypeConverterConfig {
	return TypeConverterConfig{
		Location:     time.UTC,
		NullLiterals: true,
	}
}

// NewTypeConverter creates a new TypeConverter with default configuration
func NewTypeConverter(logger *zap.Logger) *TypeConverter {
	return NewTypeConverterWithConfig(logger, DefaultConfig())
}

// NewTypeConverterWithConfig creates a TypeConverter with custom configuration
func NewTypeConverterWithConfig(logger *zap.Logger, config TypeConverterConfig) *TypeConverter {
	if logger == nil {
		logger = zap.L()
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &TypeConverter{
		logger: logger.Named("type-converter"),
		config: config,
	}
}
