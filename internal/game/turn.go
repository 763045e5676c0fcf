package game

import (
	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// TurnOutcome classifies how a turn ended.
type TurnOutcome int

const (
	// TurnPlayed means a piece was chosen and MovePiece was called; see
	// TurnReport.Result for what it did.
	TurnPlayed TurnOutcome = iota
	// TurnSkipped means no piece could be selected for the roll.
	TurnSkipped
	// TurnForfeited means the roll hit the consecutive-six limit.
	TurnForfeited
)

// String returns the string representation of a turn outcome.
func (o TurnOutcome) String() string {
	switch o {
	case TurnSkipped:
		return "skipped"
	case TurnForfeited:
		return "forfeited"
	default:
		return "played"
	}
}

// TurnReport describes one turn.
type TurnReport struct {
	Turn      int // 1-based
	Player    Player
	Roll      int
	Outcome   TurnOutcome
	Piece     int // -1 unless Outcome is TurnPlayed
	Result    ludo.MoveResult
	Captures  []ludo.PieceRef
	ExtraTurn bool // The same player rolls again
	Won       bool
}

// PlayTurn rolls for the current player and resolves one move.
//
// A chooser error is returned as is and the turn does not advance, so the
// caller may retry or abandon the game. A choice outside TurnView.Choices
// returns an error wrapping errors.ErrOutOfRange.
func (g *Game) PlayTurn() (TurnReport, error) {
	if g.winner != nil {
		return TurnReport{}, errors.ErrGameOver
	}

	player := g.players[g.current]
	if g.onStart != nil {
		if err := g.onStart(player); err != nil {
			return TurnReport{}, err
		}
	}
	roll := g.dice.Roll()
	if roll < ludo.MinSteps || roll > ludo.MaxSteps {
		return TurnReport{}, &errors.MoveError{Err: errors.ErrOutOfRange, Player: int(player.ID), Piece: -1, Steps: roll}
	}
	if g.onRoll != nil {
		g.onRoll(player, roll)
	}

	report := TurnReport{Turn: g.turns + 1, Player: player, Roll: roll, Piece: -1}
	log := g.log.With(zap.Int("turn", report.Turn), zap.String("player", player.Name), zap.Int("roll", roll))

	prevSixes := g.sixes
	if roll == ludo.EntryRoll {
		g.sixes++
	} else {
		g.sixes = 0
	}
	if roll == ludo.EntryRoll && g.rules.MaxConsecutiveSixes > 0 && g.sixes >= g.rules.MaxConsecutiveSixes {
		report.Outcome = TurnForfeited
		log.Debug("roll forfeited", zap.Int("consecutive_sixes", g.sixes))
		g.turns++
		g.endTurn()
		return report, nil
	}

	choices := g.board.SelectablePieces(player.ID, roll)
	if len(choices) == 0 {
		report.Outcome = TurnSkipped
		log.Debug("no selectable piece")
		g.turns++
		g.endTurn()
		return report, nil
	}

	piece, err := g.choosers[g.current].ChoosePiece(TurnView{
		Board:   g.board,
		Player:  player,
		Roll:    roll,
		Choices: choices,
	})
	if err != nil {
		g.sixes = prevSixes
		return TurnReport{}, err
	}
	if !contains(choices, piece) {
		g.sixes = prevSixes
		return TurnReport{}, &errors.MoveError{Err: errors.ErrOutOfRange, Player: int(player.ID), Piece: piece, Steps: roll}
	}

	move, err := g.board.Apply(player.ID, piece, roll)
	if err != nil {
		g.sixes = prevSixes
		return TurnReport{}, err
	}
	result := move.Result

	g.turns++
	report.Piece = piece
	report.Result = result
	log = log.With(zap.Int("piece", piece), zap.Stringer("result", result))

	switch result {
	case ludo.Captured:
		report.Captures = move.Captures
		g.captures += len(move.Captures)
		log.Info("captured", zap.Int("pieces", len(move.Captures)), zap.Stringer("at", move.To))
	case ludo.Finished:
		log.Info("piece finished")
		if g.board.HasWon(player.ID) {
			winner := player
			g.winner = &winner
			report.Won = true
			log.Info("player won", zap.Int("turns", g.turns))
			return report, nil
		}
	default:
		log.Debug("moved", zap.Stringer("to", move.To))
	}

	report.ExtraTurn = (result == ludo.Captured && g.rules.ExtraTurnOnCapture) ||
		(roll == ludo.EntryRoll && g.rules.ExtraTurnOnSix)
	if !report.ExtraTurn {
		g.endTurn()
	}
	return report, nil
}

// endTurn passes the dice to the next seat.
func (g *Game) endTurn() {
	g.sixes = 0
	g.current = (g.current + 1) % len(g.players)
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
