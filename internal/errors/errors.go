// Package errors provides sentinel errors and error types for ludo-go.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfRange indicates a player, piece or step count outside the
	// bounds of the board.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrNotInYard indicates a yard exit was requested for a piece that is
	// already in play.
	ErrNotInYard = errors.New("piece is not in the yard")

	// ErrCorruptState indicates the board's internal bookkeeping no longer
	// agrees with itself. It is only ever raised through a panic.
	ErrCorruptState = errors.New("corrupt board state")

	// ErrNoPlayers indicates a game was created without seats.
	ErrNoPlayers = errors.New("no players")

	// ErrGameOver indicates a turn was requested after a player has won.
	ErrGameOver = errors.New("game is over")

	// ErrInputClosed indicates the interactive input stream ended.
	ErrInputClosed = errors.New("input closed")
)

// MoveError wraps errors with move context: the player, the piece and the
// step count of the rejected call. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error // The underlying error
	Player int   // Player index as passed by the caller
	Piece  int   // Piece index as passed by the caller
	Steps  int   // Step count (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{
		fmt.Sprintf("player %d", e.Player),
		fmt.Sprintf("piece %d", e.Piece),
	}
	if e.Steps != 0 {
		parts = append(parts, fmt.Sprintf("steps %d", e.Steps))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// CorruptStateError describes a broken board invariant. It is used as a
// panic value and is fatal to the program.
type CorruptStateError struct {
	Player int
	Piece  int
	Detail string
}

func (e *CorruptStateError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: player %d, piece %d", ErrCorruptState, e.Player, e.Piece)
	}
	return fmt.Sprintf("%v: player %d, piece %d: %s", ErrCorruptState, e.Player, e.Piece, e.Detail)
}

// Unwrap returns ErrCorruptState.
func (e *CorruptStateError) Unwrap() error {
	return ErrCorruptState
}

// ConfigError reports a single invalid configuration field.
type ConfigError struct {
	Field string      // Dotted field name, e.g. "rules.players"
	Value interface{} // The offending value
	Err   error       // The underlying error (defaults to ErrInvalidConfig)
}

// Error returns a formatted error message naming the field and value.
func (e *ConfigError) Error() string {
	err := e.Err
	if err == nil {
		err = ErrInvalidConfig
	}
	if e.Field == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s = %v: %v", e.Field, e.Value, err)
}

// Unwrap returns the underlying error, or ErrInvalidConfig when none was set.
func (e *ConfigError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidConfig
	}
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
