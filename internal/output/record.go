// Package output writes turn-by-turn records of finished games.
package output

import (
	"github.com/lgbarn/ludo-go/internal/game"
)

// Record is the history of one game.
type Record struct {
	GameID   string       `json:"gameId"`
	Seed     uint64       `json:"seed,omitempty"`
	Players  []string     `json:"players"`
	Winner   string       `json:"winner,omitempty"`
	Captures int          `json:"captures"`
	Turns    []TurnRecord `json:"turns"`
}

// TurnRecord is one entry of a Record.
type TurnRecord struct {
	Turn      int      `json:"turn"`
	Seat      int      `json:"seat"`
	Player    string   `json:"player"`
	Roll      int      `json:"roll"`
	Outcome   string   `json:"outcome"`
	Piece     int      `json:"piece"` // -1 when no piece moved
	Result    string   `json:"result,omitempty"`
	Captures  []string `json:"captures,omitempty"`
	ExtraTurn bool     `json:"extraTurn,omitempty"`
	Won       bool     `json:"won,omitempty"`
}

// Recorder collects turn reports into a Record. Use Observe as a
// game.WithTurnHook callback.
type Recorder struct {
	rec Record
}

// NewRecorder starts a record for a game.
func NewRecorder(gameID string, players []game.Player, seed uint64) *Recorder {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return &Recorder{rec: Record{GameID: gameID, Seed: seed, Players: names}}
}

// Observe appends a turn.
func (r *Recorder) Observe(rep game.TurnReport) {
	tr := TurnRecord{
		Turn:      rep.Turn,
		Seat:      int(rep.Player.ID),
		Player:    rep.Player.Name,
		Roll:      rep.Roll,
		Outcome:   rep.Outcome.String(),
		Piece:     rep.Piece,
		ExtraTurn: rep.ExtraTurn,
		Won:       rep.Won,
	}
	if rep.Outcome == game.TurnPlayed {
		tr.Result = rep.Result.String()
	}
	for _, ref := range rep.Captures {
		tr.Captures = append(tr.Captures, ref.String())
	}
	r.rec.Captures += len(rep.Captures)
	r.rec.Turns = append(r.rec.Turns, tr)
}

// Finish stamps the winner and returns the record.
func (r *Recorder) Finish(res game.Result) *Record {
	if res.Winner != nil {
		r.rec.Winner = res.Winner.Name
	}
	out := r.rec
	return &out
}
