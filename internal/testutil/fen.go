package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPieces maps FEN letters (uppercase) to piece types.
var fenPieces = map[rune]chess.PieceType{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// SetupFromFEN decodes a FEN fixture into a chess.Setup. Missing trailing
// fields default to "w - - 0 1".
func SetupFromFEN(fen string) (chess.Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Setup{}, fmt.Errorf("empty FEN string")
	}

	s := chess.Setup{
		Pieces:         map[chess.Square]chess.Piece{},
		ToMove:         chess.White,
		FullmoveNumber: 1,
	}

	if err := parsePiecePositions(s.Pieces, parts[0]); err != nil {
		return chess.Setup{}, err
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			s.ToMove = chess.White
		case "b":
			s.ToMove = chess.Black
		default:
			return chess.Setup{}, fmt.Errorf("invalid side to move: %s", parts[1])
		}
	}

	if len(parts) >= 3 && parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				s.Castling.WhiteKingside = true
			case 'Q':
				s.Castling.WhiteQueenside = true
			case 'k':
				s.Castling.BlackKingside = true
			case 'q':
				s.Castling.BlackQueenside = true
			default:
				return chess.Setup{}, fmt.Errorf("invalid castling field: %s", parts[2])
			}
		}
	}

	if len(parts) >= 4 && parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return chess.Setup{}, err
		}
		s.EnPassant = &sq
	}

	var err error
	if len(parts) >= 5 {
		if s.HalfmoveClock, err = strconv.Atoi(parts[4]); err != nil {
			return chess.Setup{}, fmt.Errorf("invalid half-move clock: %w", err)
		}
	}
	if len(parts) >= 6 {
		if s.FullmoveNumber, err = strconv.Atoi(parts[5]); err != nil {
			return chess.Setup{}, fmt.Errorf("invalid full-move number: %w", err)
		}
	}

	return s, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pieces map[chess.Square]chess.Piece, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			pieceType, ok := fenPieces[unicode.ToUpper(c)]
			if !ok {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			sq := chess.NewSquare(rank, file)
			if !sq.OnBoard() {
				return fmt.Errorf("position out of bounds at %c", c)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			pieces[sq] = chess.MakePiece(colour, pieceType)
			file++
		}
	}
	return nil
}

// ParseSquare parses a square in coordinate form, e.g. "e4".
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.Square{}, fmt.Errorf("invalid square: %q", s)
	}
	sq := chess.NewSquare(int(s[1]-'1'), int(s[0]-'a'))
	if !sq.OnBoard() {
		return chess.Square{}, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// BoardFromFEN creates a board from a FEN fixture.
func BoardFromFEN(fen string) (*chess.Board, error) {
	s, err := SetupFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewBoardFromSetup(s)
}

// MustBoard creates a board from a FEN fixture.
// It calls t.Fatal if the FEN or the position is invalid.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := BoardFromFEN(fen)
	if err != nil {
		t.Fatalf("BoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// MustSquare parses a square in coordinate form.
// It calls t.Fatal if the square is invalid.
func MustSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}
