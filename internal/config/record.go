package config

import (
	"strings"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// Record formats.
const (
	RecordText = "text"
	RecordJSON = "json"
)

// RecordConfig controls the turn-by-turn record of an interactive game.
type RecordConfig struct {
	// Path writes the record to this file when set.
	Path string `yaml:"path"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// NewRecordConfig creates a RecordConfig with default values.
func NewRecordConfig() *RecordConfig {
	return &RecordConfig{Format: RecordText}
}

// Validate checks the format name.
func (r *RecordConfig) Validate() error {
	switch strings.ToLower(r.Format) {
	case RecordText, RecordJSON:
		return nil
	default:
		return &errors.ConfigError{Field: "record.format", Value: r.Format}
	}
}
