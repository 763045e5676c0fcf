// Package bot provides computer players for game.Game seats.
package bot

import (
	"fmt"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/game"
)

// New creates a chooser for the named strategy. seed only affects the
// random strategy; zero picks a time-based seed.
func New(strategy string, seed uint64) (game.Chooser, error) {
	switch strategy {
	case config.StrategyFirst:
		return First{}, nil
	case config.StrategyRandom:
		return NewRandom(seed), nil
	case config.StrategyAggressive:
		return Aggressive{}, nil
	default:
		return nil, &errors.ConfigError{
			Field: "simulation.strategy",
			Value: strategy,
			Err:   fmt.Errorf("%w: unknown strategy", errors.ErrInvalidConfig),
		}
	}
}

// Seats returns n choosers of the same strategy. Random bots get distinct
// seeds derived from seed.
func Seats(strategy string, n int, seed uint64) ([]game.Chooser, error) {
	out := make([]game.Chooser, n)
	for i := range out {
		s := seed
		if s != 0 {
			s += uint64(i) * 0x9e3779b97f4a7c15
		}
		c, err := New(strategy, s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
