package config

import (
	"runtime"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// Bot strategy names.
const (
	StrategyFirst      = "first"
	StrategyRandom     = "random"
	StrategyAggressive = "aggressive"
)

// Strategies lists the known bot strategies.
var Strategies = []string{StrategyFirst, StrategyRandom, StrategyAggressive}

// SimulationConfig holds settings for batch bot-vs-bot play.
type SimulationConfig struct {
	// Games to play; zero disables simulation.
	Games int `yaml:"games"`

	// Workers is the number of games played in parallel.
	Workers int `yaml:"workers"`

	// Strategy drives every seat in simulation and every bot seat in play.
	Strategy string `yaml:"strategy"`
}

// NewSimulationConfig creates a SimulationConfig with default values.
func NewSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Workers:  runtime.NumCPU(),
		Strategy: StrategyAggressive,
	}
}

// Validate checks counts and the strategy name.
func (s *SimulationConfig) Validate() error {
	if s.Games < 0 {
		return &errors.ConfigError{Field: "simulation.games", Value: s.Games}
	}
	if s.Workers < 1 {
		return &errors.ConfigError{Field: "simulation.workers", Value: s.Workers}
	}
	if !KnownStrategy(s.Strategy) {
		return &errors.ConfigError{Field: "simulation.strategy", Value: s.Strategy}
	}
	return nil
}

// KnownStrategy reports whether name is one of Strategies.
func KnownStrategy(name string) bool {
	for _, s := range Strategies {
		if s == name {
			return true
		}
	}
	return false
}
