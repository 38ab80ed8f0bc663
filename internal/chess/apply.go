package chess

import (
	"fmt"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/errors"
)

// MakeMove applies a move to the board and records how to undo it.
// All preconditions are checked before the board is touched, so a failed
// MakeMove leaves the board unchanged.
func (b *Board) MakeMove(m Move) error {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return b.moveError(m, errors.ErrInvalidSourceSquare, "square off the board")
	}
	moved := b.PieceAt(m.From)
	if moved.IsEmpty() {
		return b.moveError(m, errors.ErrInvalidSourceSquare, fmt.Sprintf("%s is empty", m.From))
	}
	if moved.Colour != b.toMove {
		return b.moveError(m, errors.ErrInvalidSourceSquare, fmt.Sprintf("%s holds a %s piece", m.From, moved.Colour))
	}
	if m.From == m.To {
		return b.moveError(m, errors.ErrInvalidSourceSquare, "source and destination are the same square")
	}
	if err := b.checkPromotion(m, moved); err != nil {
		return err
	}
	if err := b.checkCastle(m, moved); err != nil {
		return err
	}

	captured := b.PieceAt(m.To)
	captureSquare := m.To
	if m.EnPassant {
		victimSquare, err := b.enPassantVictim(m, moved)
		if err != nil {
			return err
		}
		captured = b.PieceAt(victimSquare)
		captureSquare = victimSquare
	}

	rec := UndoRecord{
		Move:           m,
		Moved:          moved,
		Captured:       captured,
		CaptureSquare:  captureSquare,
		ToMove:         b.toMove,
		Castling:       b.castling,
		HadEnPassant:   b.hasEnPassant,
		EnPassant:      b.epSquare,
		HalfmoveClock:  b.halfmoveClock,
		FullmoveNumber: b.fullmoveNumber,
	}

	b.hasEnPassant = false
	b.epSquare = Square{}

	if m.EnPassant {
		b.set(captureSquare, Piece{})
	}

	b.set(m.From, Piece{})
	if m.IsPromotion() {
		rec.Promoted = MakePiece(moved.Colour, m.Promotion)
		b.set(m.To, rec.Promoted)
	} else {
		b.set(m.To, moved)
	}

	if m.IsCastle() {
		_, _, rookFrom, rookTo := CastleSquares(moved.Colour, m.Castle)
		rec.Rook = b.PieceAt(rookFrom)
		rec.RookFrom = rookFrom
		rec.RookTo = rookTo
		b.set(rookFrom, Piece{})
		b.set(rookTo, rec.Rook)
	}

	b.updateCastlingRights(m, moved, captured, captureSquare)

	if moved.Type == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		b.hasEnPassant = true
		b.epSquare = Square{Rank: m.From.Rank + moved.Colour.Direction(), File: m.From.File}
	}

	if moved.Type == Pawn || !captured.IsEmpty() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if moved.Colour == Black {
		b.fullmoveNumber++
	}

	b.toMove = b.toMove.Opposite()
	b.push(rec)
	return nil
}

// checkPromotion requires a concrete choice exactly when a pawn reaches its
// last rank.
func (b *Board) checkPromotion(m Move, moved Piece) error {
	reachesLastRank := moved.Type == Pawn && m.To.Rank == moved.Colour.PromotionRank()
	switch {
	case reachesLastRank && !m.Promotion.IsPromotionChoice():
		return b.moveError(m, errors.ErrInvalidPromotion, fmt.Sprintf("cannot promote to %s", m.Promotion))
	case !reachesLastRank && m.IsPromotion():
		return b.moveError(m, errors.ErrInvalidPromotion, "move does not reach the last rank with a pawn")
	}
	return nil
}

// enPassantVictim returns the square of the pawn captured en passant.
func (b *Board) enPassantVictim(m Move, moved Piece) (Square, error) {
	if moved.Type != Pawn {
		return Square{}, b.moveError(m, errors.ErrInvalidEnPassant, fmt.Sprintf("%s is not a pawn", m.From))
	}
	if !b.PieceAt(m.To).IsEmpty() {
		return Square{}, b.moveError(m, errors.ErrInvalidEnPassant, fmt.Sprintf("%s is occupied", m.To))
	}
	victim := Square{Rank: m.To.Rank - moved.Colour.Direction(), File: m.To.File}
	if !b.PieceAt(victim).Is(moved.Colour.Opposite(), Pawn) {
		return Square{}, b.moveError(m, errors.ErrInvalidEnPassant, fmt.Sprintf("no enemy pawn on %s", victim))
	}
	return victim, nil
}

// checkCastle validates a castling move, and rejects king moves that cross
// two files without declaring a castle side.
func (b *Board) checkCastle(m Move, moved Piece) error {
	if !m.IsCastle() {
		if moved.Type == King && abs(m.To.File-m.From.File) > 1 {
			return b.moveError(m, errors.ErrIllegalCastle, "castling move must declare a castle side")
		}
		return nil
	}
	kingFrom, kingTo, _, _ := CastleSquares(moved.Colour, m.Castle)
	if moved.Type != King || m.From != kingFrom || m.To != kingTo {
		return b.moveError(m, errors.ErrIllegalCastle, fmt.Sprintf("%s castling moves the king %s to %s", m.Castle, kingFrom, kingTo))
	}
	if reason := b.castleBlocker(m.Castle); reason != "" {
		return b.moveError(m, errors.ErrIllegalCastle, reason)
	}
	return nil
}

// CanCastle reports whether the side to move may castle on the given side
// now. It returns nil when castling is allowed, and an error wrapping
// ErrIllegalCastle describing the first unmet precondition otherwise.
// Only the king's squares must be unattacked; the rook may pass through
// or start on an attacked square.
func (b *Board) CanCastle(side CastleSide) error {
	if reason := b.castleBlocker(side); reason != "" {
		return errors.Wrap(errors.ErrIllegalCastle, reason)
	}
	return nil
}

// castleBlocker returns the first unmet castling precondition, or "" if
// castling on side is allowed.
func (b *Board) castleBlocker(side CastleSide) string {
	colour := b.toMove
	if side != Kingside && side != Queenside {
		return fmt.Sprintf("unknown castle side %d", side)
	}
	if !b.castling.Can(colour, side) {
		return fmt.Sprintf("%s has lost the %s right", colour, side)
	}
	kingFrom, kingTo, rookFrom, rookTo := CastleSquares(colour, side)
	if !b.PieceAt(kingFrom).Is(colour, King) {
		return fmt.Sprintf("no %s king on %s", colour, kingFrom)
	}
	if !b.PieceAt(rookFrom).Is(colour, Rook) {
		return fmt.Sprintf("no %s rook on %s", colour, rookFrom)
	}

	lo, hi := kingFrom.File, rookFrom.File
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		sq := Square{Rank: kingFrom.Rank, File: file}
		if !b.PieceAt(sq).IsEmpty() {
			return fmt.Sprintf("%s is occupied", sq)
		}
	}

	// The king passes through the rook's destination square.
	for _, sq := range [3]Square{kingFrom, rookTo, kingTo} {
		if b.IsSquareAttacked(sq, colour.Opposite()) {
			return fmt.Sprintf("%s is attacked", sq)
		}
	}
	return ""
}

// updateCastlingRights clears rights lost by this move. Rights are never
// recomputed from piece placement; undo restores the snapshot instead.
func (b *Board) updateCastlingRights(m Move, moved, captured Piece, captureSquare Square) {
	switch moved.Type {
	case King:
		b.castling.clearColour(moved.Colour)
	case Rook:
		b.clearRightsForCorner(moved.Colour, m.From)
	}
	if !captured.IsEmpty() {
		b.clearRightsForCorner(captured.Colour, captureSquare)
	}
}

// clearRightsForCorner removes the right tied to a rook home corner.
func (b *Board) clearRightsForCorner(colour Colour, sq Square) {
	if sq.Rank != colour.HomeRank() {
		return
	}
	switch sq.File {
	case KingsideRookFile:
		b.castling.clear(colour, Kingside)
	case QueensideRookFile:
		b.castling.clear(colour, Queenside)
	}
}

// moveError wraps err with the move and board context.
func (b *Board) moveError(m Move, err error, detail string) error {
	return &errors.MoveError{
		Err:    err,
		Move:   m.String(),
		Colour: b.toMove.String(),
		Ply:    len(b.history),
		Detail: detail,
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
