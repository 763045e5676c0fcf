// Package game sequences turns over a ludo.Board: it rolls the dice, asks
// each seat's Chooser for a piece, applies the move and decides who plays
// next.
package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/dice"
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/obslog"
)

// Player is a seat at the table.
type Player struct {
	ID   ludo.PlayerID
	Name string
}

// DefaultName returns the name used for a seat without one.
func DefaultName(id ludo.PlayerID) string {
	return fmt.Sprintf("Player %d", int(id)+1)
}

// TurnView is what a Chooser sees when it has to pick a piece.
// Board must not be mutated.
type TurnView struct {
	Board   *ludo.Board
	Player  Player
	Roll    int
	Choices []int // Selectable piece indices, never empty
}

// Chooser picks which piece to move for a roll.
type Chooser interface {
	ChoosePiece(view TurnView) (int, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(view TurnView) (int, error)

// ChoosePiece calls f(view).
func (f ChooserFunc) ChoosePiece(view TurnView) (int, error) {
	return f(view)
}

// Game is one game in progress. It is not safe for concurrent use.
type Game struct {
	id       string
	rules    config.RulesConfig
	board    *ludo.Board
	players  []Player
	choosers []Chooser
	dice     dice.Roller
	log      *zap.Logger
	onStart  func(Player) error
	onRoll   func(Player, int)
	onTurn   func(TurnReport)

	current  int
	sixes    int // Consecutive sixes rolled by the current player
	turns    int
	captures int
	winner   *Player
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger; the game adds a game_id field.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		g.log = obslog.OrNop(l)
	}
}

// WithID overrides the generated game id.
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// WithTurnStart registers a function called before each roll. An error
// aborts the turn before the dice are rolled and is returned by PlayTurn.
func WithTurnStart(fn func(Player) error) Option {
	return func(g *Game) {
		g.onStart = fn
	}
}

// WithRollHook registers a function called with every roll, before the
// chooser is asked.
func WithRollHook(fn func(Player, int)) Option {
	return func(g *Game) {
		g.onRoll = fn
	}
}

// WithTurnHook registers a function called by Run after every turn.
func WithTurnHook(fn func(TurnReport)) Option {
	return func(g *Game) {
		g.onTurn = fn
	}
}

// New creates a game with one seat per chooser. rules.Players, when set,
// must match the number of choosers.
func New(rules *config.RulesConfig, choosers []Chooser, roller dice.Roller, opts ...Option) (*Game, error) {
	if len(choosers) == 0 {
		return nil, errors.ErrNoPlayers
	}
	if rules == nil {
		rules = config.NewRulesConfig()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rules.Players != 0 && rules.Players != len(choosers) {
		return nil, &errors.ConfigError{Field: "rules.players", Value: rules.Players,
			Err: errors.Wrapf(errors.ErrInvalidConfig, "%d choosers", len(choosers))}
	}
	if roller == nil {
		return nil, &errors.ConfigError{Field: "dice", Value: nil}
	}
	for i, c := range choosers {
		if c == nil {
			return nil, &errors.ConfigError{Field: fmt.Sprintf("choosers[%d]", i), Value: nil}
		}
	}

	board, err := ludo.NewBoard(len(choosers))
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:       uuid.NewString(),
		rules:    *rules,
		board:    board,
		players:  make([]Player, len(choosers)),
		choosers: append([]Chooser(nil), choosers...),
		dice:     roller,
		log:      zap.NewNop(),
	}
	for i := range g.players {
		id := ludo.PlayerID(i)
		name := DefaultName(id)
		if i < len(rules.Names) && rules.Names[i] != "" {
			name = rules.Names[i]
		}
		g.players[i] = Player{ID: id, Name: name}
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(zap.String("game_id", g.id))
	g.log.Info("game created", zap.Int("players", len(g.players)))
	return g, nil
}

// ID returns the game id.
func (g *Game) ID() string { return g.id }

// Board returns the board for read-only use by renderers.
func (g *Game) Board() *ludo.Board { return g.board }

// Players returns the seats in turn order.
func (g *Game) Players() []Player { return append([]Player(nil), g.players...) }

// Current returns the player whose turn is next.
func (g *Game) Current() Player { return g.players[g.current] }

// Turns returns the number of turns played.
func (g *Game) Turns() int { return g.turns }

// Winner returns the winning player, or nil while the game is undecided.
func (g *Game) Winner() *Player { return g.winner }

// Result summarises a finished or abandoned game.
type Result struct {
	GameID   string
	Winner   *Player // nil when the turn limit was reached first
	Turns    int
	Captures int
}

// Run plays turns until a player wins, the turn limit is reached or ctx is
// cancelled. A corrupt board panics with a *errors.CorruptStateError, which
// Run does not recover.
func (g *Game) Run(ctx context.Context) (Result, error) {
	for g.winner == nil {
		if err := ctx.Err(); err != nil {
			return g.result(), err
		}
		if g.rules.MaxTurns > 0 && g.turns >= g.rules.MaxTurns {
			g.log.Warn("turn limit reached", zap.Int("turns", g.turns))
			break
		}
		report, err := g.PlayTurn()
		if err != nil {
			return g.result(), err
		}
		if g.onTurn != nil {
			g.onTurn(report)
		}
	}
	return g.result(), nil
}

func (g *Game) result() Result {
	return Result{GameID: g.id, Winner: g.winner, Turns: g.turns, Captures: g.captures}
}
