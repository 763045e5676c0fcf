// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/errors"
)

// Flags left at their zero value keep whatever the config file or the
// defaults say.
var (
	// Configuration file
	configFile = flag.String("config", "", "YAML configuration file")

	// Table setup
	players  = flag.Int("players", 0, "Number of players, 2-4 (default: ask)")
	names    = flag.String("names", "", "Comma-separated player names by seat")
	botSeats = flag.String("bots", "", "Comma-separated seats (1-based) played by the computer, or 'all'")
	strategy = flag.String("strategy", "", "Bot strategy: first, random, aggressive")
	seed     = flag.Uint64("seed", 0, "Dice seed (default: time-based)")
	maxTurns = flag.Int("max-turns", 0, "Stop a game after N turns (0 = config or no limit)")

	// Simulation
	simulate = flag.Int("simulate", 0, "Play N bot-only games and print a summary")
	workers  = flag.Int("workers", 0, "Parallel games when simulating (0 = config or CPU count)")

	// Rendering
	pngPath  = flag.String("png", "", "Write a PNG of the final board to this file")
	pngSize  = flag.Int("png-size", 0, "PNG width and height in pixels")
	noColour = flag.Bool("no-colour", false, "Disable coloured output")

	// Game record
	recordPath   = flag.String("record", "", "Write a turn-by-turn record of the game to this file")
	recordFormat = flag.String("record-format", "", "Record format: text, json")

	// Logging
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "", "Log format: console, json")
	logFile   = flag.String("log-file", "", "Also append logs to this file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overlays command-line flags on cfg.
func applyFlags(cfg *config.Config) error {
	applyRulesFlags(cfg)
	applySimulationFlags(cfg)
	applyRenderFlags(cfg)
	applyRecordFlags(cfg)
	applyLogFlags(cfg)
	return cfg.Validate()
}

// applyRulesFlags configures seats, names and dice.
func applyRulesFlags(cfg *config.Config) {
	if *players != 0 {
		cfg.Rules.Players = *players
	}
	if list := splitList(*names); len(list) > 0 {
		cfg.Rules.Names = list
	}
	if *seed != 0 {
		cfg.Rules.Seed = *seed
	}
	if *maxTurns != 0 {
		cfg.Rules.MaxTurns = *maxTurns
	}
}

// applySimulationFlags configures batch play and the bot strategy.
func applySimulationFlags(cfg *config.Config) {
	if *simulate != 0 {
		cfg.Simulation.Games = *simulate
	}
	if *workers != 0 {
		cfg.Simulation.Workers = *workers
	}
	if *strategy != "" {
		cfg.Simulation.Strategy = strings.ToLower(strings.TrimSpace(*strategy))
	}
}

// applyRenderFlags configures colour and the PNG snapshot.
func applyRenderFlags(cfg *config.Config) {
	if *noColour {
		cfg.Render.Colour = false
	}
	if *pngPath != "" {
		cfg.Render.PNGPath = *pngPath
	}
	if *pngSize != 0 {
		cfg.Render.PNGSize = *pngSize
	}
}

// applyRecordFlags configures the game record.
func applyRecordFlags(cfg *config.Config) {
	if *recordPath != "" {
		cfg.Record.Path = *recordPath
	}
	if *recordFormat != "" {
		cfg.Record.Format = *recordFormat
	}
}

// applyLogFlags configures the logger.
func applyLogFlags(cfg *config.Config) {
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
}

// splitList splits a comma-separated flag value, trimming spaces. Empty
// entries are kept so a seat can be skipped ("Ann,,Cy").
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseBotSeats turns the -bots value into a set of zero-based seats.
// "all" selects every seat of an n-player game.
func parseBotSeats(s string, n int) (map[int]bool, error) {
	seats := make(map[int]bool)
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		for i := 0; i < n; i++ {
			seats[i] = true
		}
		return seats, nil
	}
	for _, part := range splitList(s) {
		if part == "" {
			continue
		}
		seat, err := strconv.Atoi(part)
		if err != nil || seat < 1 || seat > n {
			return nil, &errors.ConfigError{
				Field: "bots",
				Value: part,
				Err:   fmt.Errorf("%w: seats are 1-%d", errors.ErrInvalidConfig, n),
			}
		}
		seats[seat-1] = true
	}
	return seats, nil
}
