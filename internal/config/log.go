package config

import (
	"strings"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File appends logs to this path in addition to stderr when set.
	File string `yaml:"file"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: "console",
	}
}

// Validate checks the level and format names.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &errors.ConfigError{Field: "log.level", Value: l.Level}
	}
	switch strings.ToLower(l.Format) {
	case "console", "json":
	default:
		return &errors.ConfigError{Field: "log.format", Value: l.Format}
	}
	return nil
}
