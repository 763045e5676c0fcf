package config

import (
	"github.com/lgbarn/ludo-go/internal/errors"
)

// PNG size bounds in pixels.
const (
	MinPNGSize = 240
	MaxPNGSize = 4096
)

// RenderConfig holds board rendering settings.
type RenderConfig struct {
	// Colour enables ANSI colours in the console board.
	Colour bool `yaml:"colour"`

	// PNGPath writes a PNG snapshot of the final board when set.
	PNGPath string `yaml:"png_path"`

	// PNGSize is the width and height of the PNG snapshot.
	PNGSize int `yaml:"png_size"`
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Colour:  true,
		PNGSize: 640,
	}
}

// Validate checks the PNG size.
func (r *RenderConfig) Validate() error {
	if r.PNGSize < MinPNGSize || r.PNGSize > MaxPNGSize {
		return &errors.ConfigError{Field: "render.png_size", Value: r.PNGSize}
	}
	return nil
}
