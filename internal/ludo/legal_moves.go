package ludo

// CanMove reports whether moving the piece steps cells would change the
// board. Out-of-range arguments report false.
func (b *Board) CanMove(player PlayerID, piece, steps int) bool {
	p, err := b.Preview(player, piece, steps)
	return err == nil && p.Result != InvalidMove
}

// MovablePieces returns the indices of the player's pieces that have a
// legal move for the given roll.
func (b *Board) MovablePieces(player PlayerID, steps int) []int {
	var out []int
	for i := 0; i < PiecesPerPlayer; i++ {
		if b.CanMove(player, i, steps) {
			out = append(out, i)
		}
	}
	return out
}

// SelectablePieces returns the pieces a player may pick for a roll: yard
// pieces on the entry roll and every piece on either track. Unlike
// MovablePieces it does not look ahead, so a selected piece can still be
// rejected by MovePiece (blocked home slot, overshoot).
func (b *Board) SelectablePieces(player PlayerID, steps int) []int {
	var out []int
	for i := 0; i < PiecesPerPlayer; i++ {
		switch b.Locate(player, i).Kind {
		case InYard:
			if steps == EntryRoll {
				out = append(out, i)
			}
		case OnMainTrack, InHomeTrack:
			out = append(out, i)
		}
	}
	return out
}

// Progress returns how far a piece has come: 0 in the yard, 1 on its start
// cell, rising along the track and home stretch, and
// HomeEntryDistance+HomeSpaces+2 once finished.
func (b *Board) Progress(player PlayerID, piece int) int {
	loc := b.Locate(player, piece)
	switch loc.Kind {
	case OnMainTrack:
		return b.DistanceFromStart(player, loc.Pos) + 1
	case InHomeTrack:
		return HomeEntryDistance + 2 + loc.Pos
	case AtFinish:
		return HomeEntryDistance + HomeSpaces + 2
	default:
		return 0
	}
}
