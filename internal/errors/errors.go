// Package errors provides sentinel errors and error types for the chess rules engine.
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
	// ErrInvalidPosition indicates coordinates outside the 8x8 board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrNoPieceAtSquare indicates a query or move from an empty square.
	ErrNoPieceAtSquare = errors.New("no piece at square")

	// ErrWrongTurn indicates a move of a piece not belonging to the side to move.
	ErrWrongTurn = errors.New("wrong turn")

	// ErrIllegalMove indicates a move absent from the current legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingKing indicates a board without exactly one king of some colour.
	// It is a programming error in the caller and should not be retried.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSnapshot indicates a malformed board snapshot.
	ErrInvalidSnapshot = errors.New("invalid board snapshot")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMatchNotFound indicates an unknown match id.
	ErrMatchNotFound = errors.New("match not found")

	// ErrRegistryFull indicates the match registry reached its capacity.
	ErrRegistryFull = errors.New("match registry full")

	// ErrInvalidRequest indicates a malformed move or body on the wire.
	ErrInvalidRequest = errors.New("invalid request")
)

// MoveError wraps errors with move context: the move text, the square it
// starts from and the colour to move. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Move   string // The move that caused the error (if applicable)
	Square string // The square involved (if applicable)
	Colour string // The side to move when the error occurred (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}
	if e.Colour != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.Colour))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a decoding error with location context.
// It's used for FEN and JSON snapshot decoding errors.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Field being decoded (e.g. "castling", "board[3][4]")
	Offset   int    // Character offset within the field (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Offset > 0 {
			loc += fmt.Sprintf(":%d", e.Offset)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err signals a broken invariant that retrying
// cannot fix.
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingKing)
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
