package config

import (
	"github.com/lgbarn/ludo-go/internal/errors"
)

// Player count bounds, mirrored from the board so config has no import on it.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// RulesConfig holds the turn-sequencing policy of a game.
type RulesConfig struct {
	// Players is the number of seats, 2-4. Zero means ask interactively.
	Players int `yaml:"players"`

	// Names are the display names by seat; missing names default to "Player N".
	Names []string `yaml:"names"`

	// ExtraTurnOnSix grants another roll after rolling a six.
	ExtraTurnOnSix bool `yaml:"extra_turn_on_six"`

	// ExtraTurnOnCapture grants another roll after a capture.
	ExtraTurnOnCapture bool `yaml:"extra_turn_on_capture"`

	// MaxConsecutiveSixes forfeits the roll that would make this many sixes
	// in a row. Zero disables the limit.
	MaxConsecutiveSixes int `yaml:"max_consecutive_sixes"`

	// MaxTurns stops a game after this many turns without a winner.
	// Zero means no limit.
	MaxTurns int `yaml:"max_turns"`

	// Seed for the dice. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		ExtraTurnOnSix:     true,
		ExtraTurnOnCapture: true,
	}
}

// PlayerCount returns Players, or fallback when no count was configured.
func (r *RulesConfig) PlayerCount(fallback int) int {
	if r.Players == 0 {
		return fallback
	}
	return r.Players
}

// Validate checks that the rules are consistent.
func (r *RulesConfig) Validate() error {
	if r.Players != 0 && (r.Players < MinPlayers || r.Players > MaxPlayers) {
		return &errors.ConfigError{Field: "rules.players", Value: r.Players}
	}
	if r.Players != 0 && len(r.Names) > r.Players {
		return &errors.ConfigError{Field: "rules.names", Value: r.Names}
	}
	if len(r.Names) > MaxPlayers {
		return &errors.ConfigError{Field: "rules.names", Value: r.Names}
	}
	if r.MaxConsecutiveSixes < 0 {
		return &errors.ConfigError{Field: "rules.max_consecutive_sixes", Value: r.MaxConsecutiveSixes}
	}
	if r.MaxTurns < 0 {
		return &errors.ConfigError{Field: "rules.max_turns", Value: r.MaxTurns}
	}
	return nil
}
