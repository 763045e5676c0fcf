package ludo

// DistanceFromStart returns how far pos lies past the player's start,
// walking the track in the direction of play.
func (b *Board) DistanceFromStart(player PlayerID, pos int) int {
	return distanceFromStart(b.starts[player], pos)
}

func distanceFromStart(start, pos int) int {
	return (MainTrackSpaces + pos - start) % MainTrackSpaces
}

// homeIndex maps a distance from start to a home-track slot. ok is false
// while the distance is still on the shared track. The returned index may
// be HomeSpaces or more, which is an overshoot.
func homeIndex(distance int) (idx int, ok bool) {
	if distance <= HomeEntryDistance {
		return 0, false
	}
	return distance - HomeEntryDistance - 1, true
}

// advance returns the main-track cell steps ahead of pos.
func advance(pos, steps int) int {
	return (pos + steps) % MainTrackSpaces
}
