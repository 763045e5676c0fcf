package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/dice"
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/testutil"
)

var (
	ann = game.Player{ID: 0, Name: "Ann"}
	bo  = game.Player{ID: 1, Name: "Bo"}
)

func sampleRecord() *Record {
	r := NewRecorder("g-1", []game.Player{ann, bo}, 9)
	r.Observe(game.TurnReport{Turn: 1, Player: ann, Roll: 3, Outcome: game.TurnSkipped, Piece: -1})
	r.Observe(game.TurnReport{Turn: 2, Player: bo, Roll: 6, Outcome: game.TurnPlayed, Piece: 0,
		Result: ludo.Moved, ExtraTurn: true})
	r.Observe(game.TurnReport{Turn: 3, Player: bo, Roll: 2, Outcome: game.TurnPlayed, Piece: 0,
		Result: ludo.Captured, Captures: []ludo.PieceRef{{Player: 0, Piece: 1}}, ExtraTurn: true})
	return r.Finish(game.Result{GameID: "g-1", Winner: &bo, Turns: 3, Captures: 1})
}

func TestRecorder(t *testing.T) {
	rec := sampleRecord()

	testutil.AssertEqual(t, rec.Players, []string{"Ann", "Bo"})
	testutil.AssertEqual(t, rec.Winner, "Bo")
	testutil.AssertEqual(t, rec.Captures, 1)
	testutil.AssertEqual(t, len(rec.Turns), 3)
	testutil.AssertEqual(t, rec.Turns[0], TurnRecord{Turn: 1, Seat: 0, Player: "Ann", Roll: 3, Outcome: "skipped", Piece: -1})
	testutil.AssertEqual(t, rec.Turns[2].Captures, []string{"P01"})
	testutil.AssertEqual(t, rec.Turns[2].Result, "Captured")
}

func TestRecorder_FinishWithoutWinner(t *testing.T) {
	r := NewRecorder("g-2", []game.Player{ann, bo}, 0)
	rec := r.Finish(game.Result{GameID: "g-2"})
	testutil.AssertEqual(t, rec.Winner, "")
	testutil.AssertEqual(t, len(rec.Turns), 0)
}

// TestRecorder_FromGame records a real game through the turn hook.
func TestRecorder_FromGame(t *testing.T) {
	rules := config.NewRulesConfig()
	rules.MaxTurns = 4
	first := game.ChooserFunc(func(v game.TurnView) (int, error) { return v.Choices[0], nil })
	r := NewRecorder("rec", []game.Player{
		{ID: 0, Name: game.DefaultName(0)},
		{ID: 1, Name: game.DefaultName(1)},
	}, 0)
	g, err := game.New(rules, []game.Chooser{first, first}, dice.NewSequence(6, 4, 1, 2),
		game.WithID("rec"), game.WithTurnHook(r.Observe))
	testutil.RequireNoError(t, err)

	res, err := g.Run(context.Background())
	testutil.RequireNoError(t, err)
	rec := r.Finish(res)

	testutil.AssertEqual(t, rec.GameID, "rec")
	testutil.AssertEqual(t, len(rec.Turns), 4)
	testutil.AssertEqual(t, rec.Turns[1].Player, "Player 1")
	testutil.AssertEqual(t, rec.Turns[0].Outcome, "played")
	testutil.AssertTrue(t, rec.Turns[0].ExtraTurn, "six should grant an extra turn")
	testutil.AssertEqual(t, rec.Turns[1].Seat, 0)
	testutil.AssertEqual(t, rec.Turns[2].Outcome, "skipped")
}

// TestTextWriter_WriteGame verifies the text writer outputs one line per turn
func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	testutil.RequireNoError(t, w.WriteGame(sampleRecord()))
	testutil.RequireNoError(t, w.Close())

	out := buf.String()
	for _, want := range []string{
		"Game g-1\n",
		"Players: Ann, Bo\n",
		"rolled 3  skipped\n",
		"rolled 6  piece 0 moved (extra turn)\n",
		"rolled 2  piece 0 captured P01 (extra turn)\n",
		"Winner: Bo after 3 turns, 1 captures\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextWriter_NoWinner(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder("g-3", []game.Player{ann, bo}, 0).Finish(game.Result{})
	testutil.RequireNoError(t, NewTextWriter(&buf).WriteGame(rec))
	if !strings.Contains(buf.String(), "No winner after 0 turns") {
		t.Errorf("output = %q", buf.String())
	}
}

// TestJSONWriter_Batch verifies JSON output is written as one array on Close
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.RequireNoError(t, w.WriteGame(sampleRecord()))
	testutil.RequireNoError(t, w.WriteGame(sampleRecord()))
	if buf.Len() != 0 {
		t.Fatal("JSONWriter wrote before Flush")
	}
	testutil.RequireNoError(t, w.Close())

	var got JSONOutput
	testutil.RequireNoError(t, json.Unmarshal(buf.Bytes(), &got))
	if len(got.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(got.Games))
	}
	testutil.AssertEqual(t, got.Games[0], sampleRecord())

	// A second flush with nothing buffered writes nothing.
	buf.Reset()
	testutil.RequireNoError(t, w.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(config.RecordText, &buf)
	testutil.RequireNoError(t, err)
	if _, ok := w.(*TextWriter); !ok {
		t.Errorf("NewWriter(text) = %T, want *TextWriter", w)
	}
	w, err = NewWriter("", &buf)
	testutil.RequireNoError(t, err)
	if _, ok := w.(*TextWriter); !ok {
		t.Errorf("NewWriter(\"\") = %T, want *TextWriter", w)
	}
	w, err = NewWriter("JSON", &buf)
	testutil.RequireNoError(t, err)
	if _, ok := w.(*JSONWriter); !ok {
		t.Errorf("NewWriter(JSON) = %T, want *JSONWriter", w)
	}

	_, err = NewWriter("xml", &buf)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
