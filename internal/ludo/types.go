// Package ludo provides the board state and move resolution for a
// race-and-capture board game of the Ludo family.
package ludo

import "fmt"

// Constants for board dimensions and rules.
const (
	MainTrackSpaces = 52 // Cells on the shared circular track
	HomeSpaces      = 6  // Cells on each player's private final stretch
	PiecesPerPlayer = 4

	MinPlayers = 2
	MaxPlayers = 4

	MinSteps  = 1
	MaxSteps  = 6
	EntryRoll = 6 // Roll needed to leave the yard

	// HomeEntryDistance is the distance from a player's start beyond which a
	// piece leaves the shared track for its home stretch.
	HomeEntryDistance = MainTrackSpaces - HomeSpaces

	// NoPiece marks an empty home slot.
	NoPiece = -1
)

// PlayerID is an opaque 0-based player index.
type PlayerID int

// PieceRef identifies one piece on the board.
type PieceRef struct {
	Player PlayerID
	Piece  int
}

// String returns "P<player><piece>", the form used on the rendered track.
func (r PieceRef) String() string {
	return fmt.Sprintf("P%d%d", r.Player, r.Piece)
}

// LocationKind tags the variant held by a Location.
type LocationKind int

const (
	InYard LocationKind = iota
	OnMainTrack
	InHomeTrack
	AtFinish
)

// String returns the string representation of a location kind.
func (k LocationKind) String() string {
	names := []string{"Yard", "MainTrack", "HomeTrack", "Finished"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Location is where a piece is. Exactly one kind holds for every piece;
// Pos is only meaningful for OnMainTrack and InHomeTrack and is zero
// otherwise, so two Locations can be compared with ==.
type Location struct {
	Kind LocationKind
	Pos  int
}

// Yard returns the yard location.
func Yard() Location { return Location{Kind: InYard} }

// MainTrack returns the location of a main-track cell.
func MainTrack(pos int) Location { return Location{Kind: OnMainTrack, Pos: pos} }

// HomeTrack returns the location of a home-track slot.
func HomeTrack(pos int) Location { return Location{Kind: InHomeTrack, Pos: pos} }

// Finish returns the finished location.
func Finish() Location { return Location{Kind: AtFinish} }

// String returns "Yard", "MainTrack(12)", "HomeTrack(3)" or "Finished".
func (l Location) String() string {
	switch l.Kind {
	case OnMainTrack, InHomeTrack:
		return fmt.Sprintf("%s(%d)", l.Kind, l.Pos)
	default:
		return l.Kind.String()
	}
}

// MoveResult classifies the outcome of a move attempt.
type MoveResult int

const (
	InvalidMove MoveResult = iota
	Moved
	Captured
	Finished
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "Moved"
	case Captured:
		return "Captured"
	case Finished:
		return "Finished"
	default:
		return "InvalidMove"
	}
}

// Applied reports whether the move changed the board.
func (r MoveResult) Applied() bool {
	return r != InvalidMove
}
