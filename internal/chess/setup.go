package chess

import (
	"fmt"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/errors"
)

// Setup describes a custom starting position.
type Setup struct {
	Pieces         map[Square]Piece
	ToMove         Colour
	Castling       CastlingRights
	EnPassant      *Square // nil if no en passant capture is possible
	HalfmoveClock  int
	FullmoveNumber int
}

// NewBoardFromSetup creates a board from a custom position. The position is
// validated in full before the board is returned.
func NewBoardFromSetup(s Setup) (*Board, error) {
	b := &Board{
		toMove:         s.ToMove,
		castling:       s.Castling,
		halfmoveClock:  s.HalfmoveClock,
		fullmoveNumber: s.FullmoveNumber,
	}

	if s.ToMove != White && s.ToMove != Black {
		return nil, fmt.Errorf("unknown side to move %d: %w", s.ToMove, errors.ErrInvalidSetup)
	}

	kings := map[Colour]int{}
	for sq, p := range s.Pieces {
		if !sq.OnBoard() {
			return nil, fmt.Errorf("square %d,%d is off the board: %w", sq.Rank, sq.File, errors.ErrInvalidSetup)
		}
		if p.IsEmpty() {
			continue
		}
		if p.Type <= NoPiece || p.Type >= NumPieceTypes || (p.Colour != White && p.Colour != Black) {
			return nil, fmt.Errorf("invalid piece on %s: %w", sq, errors.ErrInvalidSetup)
		}
		if p.Type == Pawn && (sq.Rank == 0 || sq.Rank == BoardSize-1) {
			return nil, fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidSetup)
		}
		if p.Type == King {
			kings[p.Colour]++
		}
		b.set(sq, p)
	}
	for _, c := range []Colour{White, Black} {
		if kings[c] != 1 {
			return nil, fmt.Errorf("%s has %d kings: %w", c, kings[c], errors.ErrInvalidSetup)
		}
	}

	if err := b.validateCastlingRights(); err != nil {
		return nil, err
	}

	if s.EnPassant != nil {
		if err := b.validateEnPassant(*s.EnPassant); err != nil {
			return nil, err
		}
		b.hasEnPassant = true
		b.epSquare = *s.EnPassant
	}

	if s.HalfmoveClock < 0 {
		return nil, fmt.Errorf("negative half-move clock: %w", errors.ErrInvalidSetup)
	}
	if s.FullmoveNumber < 1 {
		return nil, fmt.Errorf("full-move number %d: %w", s.FullmoveNumber, errors.ErrInvalidSetup)
	}

	if b.InCheck(b.toMove.Opposite()) {
		return nil, fmt.Errorf("%s is in check but not to move: %w", b.toMove.Opposite(), errors.ErrInvalidSetup)
	}

	return b, nil
}

// validateCastlingRights checks that each right has its king and rook at home.
func (b *Board) validateCastlingRights() error {
	for _, c := range []Colour{White, Black} {
		for _, side := range []CastleSide{Kingside, Queenside} {
			if !b.castling.Can(c, side) {
				continue
			}
			kingFrom, _, rookFrom, _ := CastleSquares(c, side)
			if !b.PieceAt(kingFrom).Is(c, King) || !b.PieceAt(rookFrom).Is(c, Rook) {
				return fmt.Errorf("%s %s right without king and rook at home: %w", c, side, errors.ErrInvalidSetup)
			}
		}
	}
	return nil
}

// validateEnPassant checks that a pawn of the side not to move has just
// advanced two squares past sq.
func (b *Board) validateEnPassant(sq Square) error {
	mover := b.toMove.Opposite()
	dir := mover.Direction()
	if !sq.OnBoard() || sq.Rank != mover.PawnRank()+dir {
		return fmt.Errorf("en passant target %s on wrong rank: %w", sq, errors.ErrInvalidSetup)
	}
	pawnSquare := Square{Rank: sq.Rank + dir, File: sq.File}
	origin := Square{Rank: sq.Rank - dir, File: sq.File}
	if !b.PieceAt(pawnSquare).Is(mover, Pawn) {
		return fmt.Errorf("no %s pawn on %s for en passant target %s: %w", mover, pawnSquare, sq, errors.ErrInvalidSetup)
	}
	if !b.PieceAt(sq).IsEmpty() || !b.PieceAt(origin).IsEmpty() {
		return fmt.Errorf("en passant target %s is blocked: %w", sq, errors.ErrInvalidSetup)
	}
	return nil
}
