package testutil

import (
	"testing"

	"github.com/lgbarn/ludo-go/internal/ludo"
)

// Move is one scripted MovePiece call and the result it must produce.
type Move struct {
	Player ludo.PlayerID
	Piece  int
	Steps  int
	Want   ludo.MoveResult
}

// NewBoard creates a board and fails the test on error.
func NewBoard(t *testing.T, players int) *ludo.Board {
	t.Helper()
	b, err := ludo.NewBoard(players)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", players, err)
	}
	return b
}

// Play applies moves in order and fails the test on the first unexpected
// result.
func Play(t *testing.T, b *ludo.Board, moves ...Move) {
	t.Helper()
	for i, m := range moves {
		got, err := b.MovePiece(m.Player, m.Piece, m.Steps)
		if err != nil {
			t.Fatalf("move %d %+v: %v", i, m, err)
		}
		if got != m.Want {
			t.Fatalf("move %d %+v: got %v", i, m, got)
		}
	}
}

// Enter brings pieces out of the player's yard onto the start cell.
func Enter(t *testing.T, b *ludo.Board, player ludo.PlayerID, pieces ...int) {
	t.Helper()
	for _, piece := range pieces {
		if err := b.MoveFromYardToStart(player, piece); err != nil {
			t.Fatalf("enter (%d,%d): %v", player, piece, err)
		}
	}
}

// Walk advances a piece that is already in play by distance cells using
// moves of at most six. Captures along the way are allowed; any rejected
// step fails the test.
func Walk(t *testing.T, b *ludo.Board, player ludo.PlayerID, piece, distance int) {
	t.Helper()
	for distance > 0 {
		steps := distance
		if steps > ludo.MaxSteps {
			steps = ludo.MaxSteps
		}
		got, err := b.MovePiece(player, piece, steps)
		if err != nil {
			t.Fatalf("walk (%d,%d) by %d: %v", player, piece, steps, err)
		}
		if got == ludo.InvalidMove {
			t.Fatalf("walk (%d,%d) by %d from %v: rejected", player, piece, steps, b.Locate(player, piece))
		}
		distance -= steps
	}
}

// FinishAll walks every piece of a player from the yard to the finish.
func FinishAll(t *testing.T, b *ludo.Board, player ludo.PlayerID) {
	t.Helper()
	for piece := 0; piece < ludo.PiecesPerPlayer; piece++ {
		if b.IsInYard(player, piece) {
			Enter(t, b, player, piece)
		}
		// From the start cell, HomeEntryDistance cells to the last shared
		// cell and HomeSpaces+1 more to the finish.
		remaining := ludo.HomeEntryDistance + ludo.HomeSpaces + 1 - (b.Progress(player, piece) - 1)
		Walk(t, b, player, piece, remaining)
		if !b.IsFinished(player, piece) {
			t.Fatalf("(%d,%d) at %v after walking to the finish", player, piece, b.Locate(player, piece))
		}
	}
}
