// ludo is a terminal Ludo game for two to four players, with computer
// opponents and a bot-only simulation mode.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/bot"
	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/dice"
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/obslog"
	"github.com/lgbarn/ludo-go/internal/output"
	"github.com/lgbarn/ludo-go/internal/render"
	"github.com/lgbarn/ludo-go/internal/sim"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("ludo-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := obslog.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, logger)
	stop()
	_ = closeLog()
	os.Exit(code)
}

// loadConfig reads the -config file, if any, and applies the flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run dispatches to simulation or interactive play and maps the outcome to
// an exit code.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) int {
	var err error
	if cfg.Simulation.Games > 0 {
		err = runSimulation(ctx, cfg, logger)
	} else {
		err = play(ctx, cfg, logger, *botSeats)
	}

	switch {
	case err == nil, stderrors.Is(err, errQuit):
		return 0
	case stderrors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "Interrupted.")
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func runSimulation(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	summary, err := sim.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return summary.Write(cfg.Output)
}

// play runs one interactive game on cfg.Input and cfg.Output. bots lists
// the seats driven by the configured strategy.
func play(ctx context.Context, cfg *config.Config, logger *zap.Logger, bots string) error {
	con := newConsole(cfg.Input, cfg.Output, cfg.Render.Colour && !color.NoColor)
	con.welcome()

	err := playGame(ctx, cfg, logger, bots, con)
	if stderrors.Is(err, errQuit) {
		con.goodbye()
	}
	return err
}

func playGame(ctx context.Context, cfg *config.Config, logger *zap.Logger, bots string, con *console) error {
	n := cfg.Rules.Players
	if n == 0 {
		var err error
		if n, err = con.askPlayerCount(); err != nil {
			return err
		}
	}
	botSet, err := parseBotSeats(bots, n)
	if err != nil {
		return err
	}

	rules := *cfg.Rules
	rules.Players = n
	names := make([]string, n)
	choosers := make([]game.Chooser, n)
	for i := 0; i < n; i++ {
		id := ludo.PlayerID(i)
		if i < len(cfg.Rules.Names) {
			names[i] = cfg.Rules.Names[i]
		}
		if botSet[i] {
			botSeed := rules.Seed
			if botSeed != 0 {
				botSeed += uint64(i + 1)
			}
			if choosers[i], err = bot.New(cfg.Simulation.Strategy, botSeed); err != nil {
				return err
			}
			if names[i] == "" {
				names[i] = game.DefaultName(id) + " (bot)"
			}
			continue
		}
		choosers[i] = con
		if names[i] == "" {
			if names[i], err = con.askName(id); err != nil {
				return err
			}
		}
	}
	rules.Names = names
	con.names = names

	var (
		g   *game.Game
		rec *output.Recorder
	)
	g, err = game.New(&rules, choosers, dice.NewDie(dice.DefaultSides, rules.Seed),
		game.WithLogger(logger),
		game.WithTurnStart(func(p game.Player) error {
			con.showBoard(g.Board())
			con.showTurn(p)
			if botSet[int(p.ID)] {
				return nil
			}
			return con.waitForRoll()
		}),
		game.WithRollHook(func(_ game.Player, roll int) { con.showRoll(roll) }),
		game.WithTurnHook(func(r game.TurnReport) {
			con.showReport(r)
			if rec != nil {
				rec.Observe(r)
			}
		}),
	)
	if err != nil {
		return err
	}
	if cfg.Record.Path != "" {
		rec = output.NewRecorder(g.ID(), g.Players(), rules.Seed)
	}

	res, err := g.Run(ctx)
	if err != nil {
		return err
	}

	con.showBoard(g.Board())
	if res.Winner != nil {
		con.gameOver(*res.Winner)
	} else {
		fmt.Fprintf(cfg.Output, "No winner after %d turns.\n", res.Turns)
	}

	if cfg.Render.PNGPath != "" {
		opts := render.PNGOptions{Size: cfg.Render.PNGSize, Names: names}
		if err := render.SavePNG(ctx, cfg.Render.PNGPath, g.Board(), opts); err != nil {
			return err
		}
		fmt.Fprintf(cfg.Output, "Board saved to %s\n", cfg.Render.PNGPath)
	}
	if rec != nil {
		if err := writeRecord(cfg.Record, rec.Finish(res)); err != nil {
			return err
		}
		fmt.Fprintf(cfg.Output, "Game record saved to %s\n", cfg.Record.Path)
	}
	return nil
}

// writeRecord writes one game record to the configured file.
func writeRecord(rc *config.RecordConfig, record *output.Record) error {
	f, err := os.Create(rc.Path)
	if err != nil {
		return errors.Wrapf(err, "creating record %s", rc.Path)
	}
	w, err := output.NewWriter(rc.Format, f)
	if err != nil {
		f.Close()
		return err
	}
	if err := w.WriteGame(record); err != nil {
		f.Close()
		return errors.Wrap(err, "writing record")
	}
	if err := w.Close(); err != nil {
		f.Close()
		return errors.Wrap(err, "writing record")
	}
	return f.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ludo [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play Ludo in the terminal, or simulate bot-only games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBot strategies (-strategy):\n")
	fmt.Fprintf(os.Stderr, "  first       Move the lowest-numbered piece\n")
	fmt.Fprintf(os.Stderr, "  random      Move a random piece\n")
	fmt.Fprintf(os.Stderr, "  aggressive  Capture, finish, then advance (default)\n")
	fmt.Fprintf(os.Stderr, "\nType q or quit at any prompt to leave the game.\n")
}
