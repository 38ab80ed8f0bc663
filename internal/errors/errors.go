// Package errors provides sentinel errors and error types for the rules engine.
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
	// ErrInvalidSourceSquare indicates a move whose source square is empty,
	// off the board, or holds a piece of the side not to move.
	ErrInvalidSourceSquare = errors.New("invalid source square")

	// ErrInvalidEnPassant indicates an en passant move without a valid victim.
	ErrInvalidEnPassant = errors.New("invalid en passant capture")

	// ErrIllegalCastle indicates a castling move whose rights, occupancy or
	// attacked-square preconditions are not met.
	ErrIllegalCastle = errors.New("illegal castle")

	// ErrInvalidPromotion indicates a missing, invalid or misplaced promotion choice.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrInvalidSetup indicates a custom position that cannot be played from.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the move in coordinate form,
// the colour that tried to play it and the ply at which it was attempted.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Move   string // The move in coordinate form, e.g. "e1g1"
	Colour string // The side that attempted the move (if known)
	Ply    int    // Number of moves already made on the board
	Detail string // Extra context (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.Colour != "" {
		parts = append(parts, fmt.Sprintf("by %s", e.Colour))
	}
	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	if e.Detail != "" {
		parts = append(parts, e.Detail)
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
