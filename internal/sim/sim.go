// Package sim plays batches of bot-only games across a worker pool and
// summarises the outcomes.
package sim

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/bot"
	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/dice"
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/obslog"
	"github.com/lgbarn/ludo-go/internal/worker"
)

// DefaultPlayers is the seat count when the rules leave it open.
const DefaultPlayers = 4

// DefaultMaxTurns caps simulated games whose rules set no limit.
const DefaultMaxTurns = 10000

// seedStep spreads per-game seeds across the 64-bit space.
const seedStep = 0x9e3779b97f4a7c15

// Summary aggregates a batch of games.
type Summary struct {
	Games      int   // Games played to completion or to the turn limit
	Players    int   // Seats per game
	Wins       []int // Wins by seat
	Unfinished int   // Games stopped by the turn limit
	Turns      int   // Total turns across all games
	Captures   int   // Total pieces captured across all games
	Elapsed    time.Duration
}

// MeanTurns returns the average game length in turns.
func (s Summary) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Turns) / float64(s.Games)
}

// WinRate returns the share of games won by a seat.
func (s Summary) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.Wins) {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Games)
}

// Write prints the summary as a small report.
func (s Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Games: %d (%d unfinished), %d players\n", s.Games, s.Unfinished, s.Players); err != nil {
		return err
	}
	for seat, wins := range s.Wins {
		if _, err := fmt.Fprintf(w, "Player %d: %d wins (%.1f%%)\n", seat, wins, 100*s.WinRate(seat)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Mean turns: %.1f, captures: %d, elapsed: %s\n",
		s.MeanTurns(), s.Captures, s.Elapsed.Round(time.Millisecond))
	return err
}

// Run plays cfg.Simulation.Games games with every seat driven by the
// configured bot strategy. Game i uses a dice seed derived from
// cfg.Rules.Seed, so a fixed seed reproduces the whole batch. On
// cancellation Run stops submitting games and returns the partial summary
// with ctx's error.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Summary, error) {
	logger = obslog.OrNop(logger)
	if cfg == nil {
		return Summary{}, &errors.ConfigError{Field: "config", Value: nil}
	}

	rules := *cfg.Rules
	players := rules.PlayerCount(DefaultPlayers)
	rules.Players = players
	rules.Names = nil
	if rules.MaxTurns == 0 {
		rules.MaxTurns = DefaultMaxTurns
	}
	if err := rules.Validate(); err != nil {
		return Summary{}, err
	}
	strategy := cfg.Simulation.Strategy
	if !config.KnownStrategy(strategy) {
		return Summary{}, &errors.ConfigError{Field: "simulation.strategy", Value: strategy}
	}

	base := rules.Seed
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	summary := Summary{Players: players, Wins: make([]int, players)}
	games := cfg.Simulation.Games
	if games <= 0 {
		return summary, nil
	}

	play := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Index: item.Index, Winner: -1}
		choosers, err := bot.Seats(strategy, players, item.Seed)
		if err != nil {
			res.Err = err
			return res
		}
		g, err := game.New(&rules, choosers, dice.NewDie(dice.DefaultSides, item.Seed),
			game.WithLogger(logger.With(zap.Int("game", item.Index), zap.Uint64("seed", item.Seed))))
		if err != nil {
			res.Err = err
			return res
		}
		out, err := g.Run(ctx)
		res.Turns = out.Turns
		res.Captures = out.Captures
		res.Err = err
		if out.Winner != nil {
			res.Winner = int(out.Winner.ID)
		}
		return res
	}

	workers := cfg.Simulation.Workers
	if workers > games {
		workers = games
	}
	pool := worker.NewPool(play, worker.WithWorkers(workers), worker.WithBufferSize(workers*2))
	pool.Start(ctx)

	start := time.Now()
	logger.Info("simulation started",
		zap.Int("games", games),
		zap.Int("players", players),
		zap.Int("workers", pool.NumWorkers()),
		zap.String("strategy", strategy),
		zap.Uint64("seed", base))

	go func() {
		defer pool.Close()
		for i := 0; i < games; i++ {
			item := worker.WorkItem{Index: i, Seed: base + uint64(i)*seedStep}
			if item.Seed == 0 {
				item.Seed = seedStep
			}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	var firstErr error
	for res := range pool.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			if !stopsBatch(res.Err) {
				logger.Error("game failed", zap.Int("game", res.Index), zap.Error(res.Err))
			}
			continue
		}
		summary.Games++
		summary.Turns += res.Turns
		summary.Captures += res.Captures
		if res.Winner >= 0 {
			summary.Wins[res.Winner]++
		} else {
			summary.Unfinished++
		}
	}
	summary.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if firstErr != nil {
		return summary, errors.Wrap(firstErr, "simulation")
	}
	logger.Info("simulation finished",
		zap.Int("games", summary.Games),
		zap.Int("unfinished", summary.Unfinished),
		zap.Float64("mean_turns", summary.MeanTurns()),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func stopsBatch(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
