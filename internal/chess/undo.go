package chess

// UndoRecord is the pre-move snapshot pushed by MakeMove and consumed by
// UndoMove. Everything needed to restore the board is held by value.
type UndoRecord struct {
	Move  Move
	Moved Piece // The piece that stood on Move.From

	// Captured is empty when the move captured nothing. CaptureSquare
	// equals Move.To except for en passant.
	Captured      Piece
	CaptureSquare Square

	ToMove         Colour
	Castling       CastlingRights
	HadEnPassant   bool
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int

	// Rook relocation, set only for castling moves.
	Rook     Piece
	RookFrom Square
	RookTo   Square

	// Promoted is the piece created on Move.To, set only for promotions.
	Promoted Piece
}

// push appends a record to the undo history.
func (b *Board) push(rec UndoRecord) {
	b.history = append(b.history, rec)
}

// pop removes and returns the most recent record.
func (b *Board) pop() (UndoRecord, bool) {
	n := len(b.history)
	if n == 0 {
		return UndoRecord{}, false
	}
	rec := b.history[n-1]
	b.history = b.history[:n-1]
	return rec, true
}

// UndoMove reverses the most recent MakeMove. It does nothing if there is
// no move to undo.
func (b *Board) UndoMove() {
	rec, ok := b.pop()
	if !ok {
		return
	}

	b.toMove = rec.ToMove
	b.castling = rec.Castling
	b.hasEnPassant = rec.HadEnPassant
	b.epSquare = rec.EnPassant
	b.halfmoveClock = rec.HalfmoveClock
	b.fullmoveNumber = rec.FullmoveNumber

	if rec.Move.IsCastle() {
		b.set(rec.RookTo, Piece{})
		b.set(rec.RookFrom, rec.Rook)
	}

	// Any promoted piece on the destination is discarded here.
	b.set(rec.Move.To, Piece{})
	b.set(rec.Move.From, rec.Moved)

	if !rec.Captured.IsEmpty() {
		b.set(rec.CaptureSquare, rec.Captured)
	}
}
