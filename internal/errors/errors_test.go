package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidSourceSquare", ErrInvalidSourceSquare, ErrInvalidSourceSquare},
		{"ErrInvalidEnPassant", ErrInvalidEnPassant, ErrInvalidEnPassant},
		{"ErrIllegalCastle", ErrIllegalCastle, ErrIllegalCastle},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidSetup", ErrInvalidSetup, ErrInvalidSetup},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidSourceSquare, ErrIllegalCastle) {
		t.Error("ErrInvalidSourceSquare should not match ErrIllegalCastle")
	}
	if errors.Is(ErrInvalidEnPassant, ErrInvalidPromotion) {
		t.Error("ErrInvalidEnPassant should not match ErrInvalidPromotion")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("rook on h1 has moved: %w", ErrIllegalCastle)

	if !errors.Is(wrapped, ErrIllegalCastle) {
		t.Errorf("errors.Is(wrapped, ErrIllegalCastle) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalCastle,
				Move:   "e1g1",
				Colour: "White",
				Ply:    12,
				Detail: "f1 is attacked",
			},
			contains: []string{"e1g1", "White", "ply 12", "f1 is attacked", "illegal castle"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrInvalidSourceSquare,
			},
			contains: []string{"ply 0", "invalid source square"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrInvalidEnPassant,
		Move: "e5d6",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrInvalidEnPassant) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidEnPassant)
	}

	if !errors.Is(moveErr, ErrInvalidEnPassant) {
		t.Error("errors.Is(moveErr, ErrInvalidEnPassant) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrInvalidPromotion,
		Move: "a7a8",
		Ply:  24,
	}

	wrapped := fmt.Errorf("speculative apply failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.Move != "a7a8" {
		t.Errorf("extractedErr.Move = %q, want %q", extractedErr.Move, "a7a8")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidSetup, "two white kings")

	if !errors.Is(wrapped, ErrInvalidSetup) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "two white kings") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "depth %d out of range", 0)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "depth 0") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
