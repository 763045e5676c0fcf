package ludo

import (
	"github.com/lgbarn/ludo-go/internal/errors"
)

// Board holds the location of every piece for one game.
//
// pieces is the record of where each piece is. track and home index the
// same information by cell so that occupancy and captures need no scan;
// the two views are kept in step by every mutation.
type Board struct {
	playerCount int

	// Shared track cells; a cell may hold pieces of several players.
	track [MainTrackSpaces][]PieceRef

	// Per-player home stretch; each slot holds a piece index or NoPiece.
	home [][HomeSpaces]int

	pieces [][PiecesPerPlayer]Location
	starts []int
}

// NewBoard creates a board for playerCount players with every piece in its
// yard. playerCount must be between MinPlayers and MaxPlayers.
func NewBoard(playerCount int) (*Board, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, &errors.ConfigError{Field: "players", Value: playerCount}
	}

	b := &Board{
		playerCount: playerCount,
		home:        make([][HomeSpaces]int, playerCount),
		pieces:      make([][PiecesPerPlayer]Location, playerCount),
		starts:      make([]int, playerCount),
	}
	for p := 0; p < playerCount; p++ {
		for slot := range b.home[p] {
			b.home[p][slot] = NoPiece
		}
		for i := range b.pieces[p] {
			b.pieces[p][i] = Yard()
		}
		// Starting positions are evenly distributed around the track.
		b.starts[p] = (p * (MainTrackSpaces / playerCount)) % MainTrackSpaces
	}
	return b, nil
}

// MustNewBoard is like NewBoard but panics on an invalid player count.
func MustNewBoard(playerCount int) *Board {
	b, err := NewBoard(playerCount)
	if err != nil {
		panic(err)
	}
	return b
}

// PlayerCount returns the number of players on the board.
func (b *Board) PlayerCount() int {
	return b.playerCount
}

// StartPosition returns the main-track cell where the player's pieces enter.
func (b *Board) StartPosition(player PlayerID) int {
	return b.starts[player]
}

// IsInYard reports whether the piece is waiting in its yard.
func (b *Board) IsInYard(player PlayerID, piece int) bool {
	return b.pieces[player][piece].Kind == InYard
}

// IsFinished reports whether the piece has reached the finish.
func (b *Board) IsFinished(player PlayerID, piece int) bool {
	return b.pieces[player][piece].Kind == AtFinish
}

// Locate returns the location of a piece.
//
// A track location is confirmed against the cell index before it is
// returned. If the two disagree the board is corrupt and Locate panics with
// a *errors.CorruptStateError; this is never an expected outcome.
func (b *Board) Locate(player PlayerID, piece int) Location {
	loc := b.pieces[player][piece]
	switch loc.Kind {
	case InYard, AtFinish:
		return loc
	case OnMainTrack:
		if loc.Pos >= 0 && loc.Pos < MainTrackSpaces &&
			indexOf(b.track[loc.Pos], PieceRef{player, piece}) >= 0 {
			return loc
		}
	case InHomeTrack:
		if loc.Pos >= 0 && loc.Pos < HomeSpaces && b.home[player][loc.Pos] == piece {
			return loc
		}
	}
	panic(&errors.CorruptStateError{
		Player: int(player),
		Piece:  piece,
		Detail: "piece not found at recorded " + loc.String(),
	})
}

// HasWon reports whether all of the player's pieces have finished.
func (b *Board) HasWon(player PlayerID) bool {
	for _, loc := range b.pieces[player] {
		if loc.Kind != AtFinish {
			return false
		}
	}
	return true
}

// Pieces returns the locations of all of a player's pieces.
func (b *Board) Pieces(player PlayerID) [PiecesPerPlayer]Location {
	var out [PiecesPerPlayer]Location
	for i := range out {
		out[i] = b.Locate(player, i)
	}
	return out
}

// Cell returns the pieces on a main-track cell in arrival order.
// The returned slice is a copy.
func (b *Board) Cell(pos int) []PieceRef {
	cell := b.track[pos]
	if len(cell) == 0 {
		return nil
	}
	out := make([]PieceRef, len(cell))
	copy(out, cell)
	return out
}

// YardPieces returns the indices of the player's pieces in the yard.
func (b *Board) YardPieces(player PlayerID) []int {
	return b.piecesOfKind(player, InYard)
}

// FinishedPieces returns the indices of the player's finished pieces.
func (b *Board) FinishedPieces(player PlayerID) []int {
	return b.piecesOfKind(player, AtFinish)
}

// HomeSlots returns the player's home stretch by slot, NoPiece when empty.
func (b *Board) HomeSlots(player PlayerID) [HomeSpaces]int {
	return b.home[player]
}

func (b *Board) piecesOfKind(player PlayerID, kind LocationKind) []int {
	var out []int
	for i, loc := range b.pieces[player] {
		if loc.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{
		playerCount: b.playerCount,
		home:        make([][HomeSpaces]int, b.playerCount),
		pieces:      make([][PiecesPerPlayer]Location, b.playerCount),
		starts:      make([]int, b.playerCount),
	}
	copy(nb.home, b.home)
	copy(nb.pieces, b.pieces)
	copy(nb.starts, b.starts)
	for pos, cell := range b.track {
		if len(cell) > 0 {
			nb.track[pos] = append([]PieceRef(nil), cell...)
		}
	}
	return nb
}

// validPiece reports whether player and piece address a piece on this board.
func (b *Board) validPiece(player PlayerID, piece int) bool {
	return player >= 0 && int(player) < b.playerCount &&
		piece >= 0 && piece < PiecesPerPlayer
}

func indexOf(cell []PieceRef, ref PieceRef) int {
	for i, r := range cell {
		if r == ref {
			return i
		}
	}
	return -1
}
