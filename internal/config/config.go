// Package config provides configuration for ludo-go.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// Config holds all program configuration. Sections map to the top-level
// keys of a YAML config file.
type Config struct {
	Rules      *RulesConfig      `yaml:"rules"`
	Log        *LogConfig        `yaml:"log"`
	Render     *RenderConfig     `yaml:"render"`
	Simulation *SimulationConfig `yaml:"simulation"`
	Record     *RecordConfig     `yaml:"record"`

	// Output streams
	Output io.Writer `yaml:"-"`
	Input  io.Reader `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Log:        NewLogConfig(),
		Render:     NewRenderConfig(),
		Simulation: NewSimulationConfig(),
		Record:     NewRecordConfig(),
		Output:     os.Stdout,
		Input:      os.Stdin,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	return c.Record.Validate()
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on the command line
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected. Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults restores sections a config file set to null.
func (c *Config) fillDefaults() {
	if c.Rules == nil {
		c.Rules = NewRulesConfig()
	}
	if c.Log == nil {
		c.Log = NewLogConfig()
	}
	if c.Render == nil {
		c.Render = NewRenderConfig()
	}
	if c.Simulation == nil {
		c.Simulation = NewSimulationConfig()
	}
	if c.Record == nil {
		c.Record = NewRecordConfig()
	}
}
