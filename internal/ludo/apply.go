package ludo

import (
	"github.com/lgbarn/ludo-go/internal/errors"
)

// MovePreview describes what a move would do without doing it.
type MovePreview struct {
	From     Location
	To       Location   // Equal to From when Result is InvalidMove
	Result   MoveResult
	Captures []PieceRef // Opposing pieces that would be sent to their yards
}

// MoveFromYardToStart places a piece from the yard on its player's start
// cell. It does not check the entry roll; MovePiece does. Pieces of other
// players already on the start cell are not captured.
func (b *Board) MoveFromYardToStart(player PlayerID, piece int) error {
	if !b.validPiece(player, piece) {
		return &errors.MoveError{Err: errors.ErrOutOfRange, Player: int(player), Piece: piece}
	}
	if !b.IsInYard(player, piece) {
		return &errors.MoveError{Err: errors.ErrNotInYard, Player: int(player), Piece: piece}
	}
	b.commit(PieceRef{player, piece}, MovePreview{
		From:   Yard(),
		To:     MainTrack(b.starts[player]),
		Result: Moved,
	})
	return nil
}

// MovePiece moves a piece steps cells and reports the outcome.
//
// A rule violation is reported as InvalidMove and leaves the board
// untouched. The error is only non-nil when player, piece or steps are out
// of range, in which case it wraps errors.ErrOutOfRange.
func (b *Board) MovePiece(player PlayerID, piece, steps int) (MoveResult, error) {
	p, err := b.Apply(player, piece, steps)
	return p.Result, err
}

// Apply is MovePiece returning the full description of the move it made,
// including the pieces it captured.
func (b *Board) Apply(player PlayerID, piece, steps int) (MovePreview, error) {
	p, err := b.Preview(player, piece, steps)
	if err != nil || p.Result == InvalidMove {
		return p, err
	}
	b.commit(PieceRef{player, piece}, p)
	return p, nil
}

// Preview resolves a move against the current board without changing it.
// MovePiece and Apply commit exactly what Preview returns.
func (b *Board) Preview(player PlayerID, piece, steps int) (MovePreview, error) {
	if !b.validPiece(player, piece) || steps < MinSteps || steps > MaxSteps {
		return MovePreview{Result: InvalidMove}, &errors.MoveError{
			Err:    errors.ErrOutOfRange,
			Player: int(player),
			Piece:  piece,
			Steps:  steps,
		}
	}

	from := b.Locate(player, piece)
	invalid := MovePreview{From: from, To: from, Result: InvalidMove}

	switch from.Kind {
	case InYard:
		if steps != EntryRoll {
			return invalid, nil
		}
		return MovePreview{From: from, To: MainTrack(b.starts[player]), Result: Moved}, nil

	case OnMainTrack:
		return b.previewMainTrack(player, from, steps), nil

	case InHomeTrack:
		newPos := from.Pos + steps
		switch {
		case newPos == HomeSpaces:
			return MovePreview{From: from, To: Finish(), Result: Finished}, nil
		case newPos > HomeSpaces:
			// Overshoot: the finish must be reached exactly.
			return invalid, nil
		case b.home[player][newPos] != NoPiece:
			return invalid, nil
		default:
			return MovePreview{From: from, To: HomeTrack(newPos), Result: Moved}, nil
		}

	default:
		return invalid, nil
	}
}

// previewMainTrack resolves a move for a piece on the shared track. The
// destination is fully validated here, before commit touches the origin.
func (b *Board) previewMainTrack(player PlayerID, from Location, steps int) MovePreview {
	absolutePos := advance(from.Pos, steps)
	distance := distanceFromStart(b.starts[player], absolutePos)

	if homePos, entering := homeIndex(distance); entering {
		if homePos >= HomeSpaces || b.home[player][homePos] != NoPiece {
			return MovePreview{From: from, To: from, Result: InvalidMove}
		}
		return MovePreview{From: from, To: HomeTrack(homePos), Result: Moved}
	}

	p := MovePreview{From: from, To: MainTrack(absolutePos), Result: Moved}
	for _, ref := range b.track[absolutePos] {
		if ref.Player != player {
			p.Captures = append(p.Captures, ref)
		}
	}
	if len(p.Captures) > 0 {
		p.Result = Captured
	}
	return p
}

// commit applies a validated preview. It is the only code that mutates
// piece locations.
func (b *Board) commit(ref PieceRef, p MovePreview) {
	switch p.From.Kind {
	case OnMainTrack:
		b.removeFromCell(p.From.Pos, ref)
	case InHomeTrack:
		b.home[ref.Player][p.From.Pos] = NoPiece
	}

	for _, captured := range p.Captures {
		b.removeFromCell(p.To.Pos, captured)
		b.pieces[captured.Player][captured.Piece] = Yard()
	}

	switch p.To.Kind {
	case OnMainTrack:
		b.track[p.To.Pos] = append(b.track[p.To.Pos], ref)
	case InHomeTrack:
		b.home[ref.Player][p.To.Pos] = ref.Piece
	}
	b.pieces[ref.Player][ref.Piece] = p.To
}

func (b *Board) removeFromCell(pos int, ref PieceRef) {
	cell := b.track[pos]
	i := indexOf(cell, ref)
	if i < 0 {
		panic(&errors.CorruptStateError{
			Player: int(ref.Player),
			Piece:  ref.Piece,
			Detail: "piece missing from main-track cell",
		})
	}
	b.track[pos] = append(cell[:i], cell[i+1:]...)
}
