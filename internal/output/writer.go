package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/errors"
)

// GameWriter is the interface for writing game records.
// Different implementations handle different formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single record to the output.
	WriteGame(rec *Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the GameWriter for a config.Record* format name.
func NewWriter(format string, w io.Writer) (GameWriter, error) {
	switch strings.ToLower(format) {
	case config.RecordText, "":
		return NewTextWriter(w), nil
	case config.RecordJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, &errors.ConfigError{Field: "record.format", Value: format}
	}
}

// TextWriter writes records as one line per turn.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteGame writes a record as text.
func (tw *TextWriter) WriteGame(rec *Record) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game %s\n", rec.GameID)
	fmt.Fprintf(&sb, "Players: %s\n", strings.Join(rec.Players, ", "))
	for _, t := range rec.Turns {
		fmt.Fprintf(&sb, "%4d  %-16s rolled %d  %s\n", t.Turn, t.Player, t.Roll, describeTurn(t))
	}
	if rec.Winner != "" {
		fmt.Fprintf(&sb, "Winner: %s after %d turns, %d captures\n", rec.Winner, len(rec.Turns), rec.Captures)
	} else {
		fmt.Fprintf(&sb, "No winner after %d turns, %d captures\n", len(rec.Turns), rec.Captures)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func describeTurn(t TurnRecord) string {
	if t.Piece < 0 {
		return t.Outcome
	}
	s := fmt.Sprintf("piece %d %s", t.Piece, strings.ToLower(t.Result))
	if len(t.Captures) > 0 {
		s += " " + strings.Join(t.Captures, " ")
	}
	switch {
	case t.Won:
		s += " (won)"
	case t.ExtraTurn:
		s += " (extra turn)"
	}
	return s
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple records for array output.
type JSONOutput struct {
	Games []*Record `json:"games"`
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*Record
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a record for JSON output.
func (jw *JSONWriter) WriteGame(rec *Record) error {
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
