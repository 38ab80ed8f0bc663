package chess

// Board represents a chess board with all state needed for the game.
// A Board is not safe for concurrent use; use Clone to give each
// goroutine its own copy.
type Board struct {
	// squares[rank][file]; the zero Piece is an empty square.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	toMove Colour

	castling CastlingRights

	// If hasEnPassant is set, epSquare is the square a pawn may capture
	// onto during the next half-move only.
	hasEnPassant bool
	epSquare     Square

	// The half-move clock since the last pawn move or capture.
	halfmoveClock int

	// The current move number, starting at 1.
	fullmoveNumber int

	// Undo records, most recent last.
	history []UndoRecord
}

// backRank is the piece order on each home rank, a-file first.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a board set up in the standard initial position.
func NewBoard() *Board {
	b := &Board{
		toMove:         White,
		castling:       AllCastlingRights,
		fullmoveNumber: 1,
	}
	for file := 0; file < BoardSize; file++ {
		b.squares[0][file] = W(backRank[file])
		b.squares[1][file] = W(Pawn)
		b.squares[6][file] = B(Pawn)
		b.squares[7][file] = B(backRank[file])
	}
	return b
}

// PieceAt returns the piece on the square, or the empty Piece if the
// square is empty or off the board.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.squares[sq.Rank][sq.File]
}

// set places a piece (or the empty Piece) on a square.
func (b *Board) set(sq Square, p Piece) {
	b.squares[sq.Rank][sq.File] = p
}

// ToMove returns the side to move.
func (b *Board) ToMove() Colour {
	return b.toMove
}

// CastlingRights returns a copy of the current castling rights.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// EnPassant returns the en passant target square, if one is set.
func (b *Board) EnPassant() (Square, bool) {
	return b.epSquare, b.hasEnPassant
}

// HalfmoveClock returns the number of half-moves since the last pawn move
// or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveNumber returns the current full-move number.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// CanUndo reports whether there is a move to undo.
func (b *Board) CanUndo() bool {
	return len(b.history) > 0
}

// Ply returns the number of moves made on this board that can be undone.
func (b *Board) Ply() int {
	return len(b.history)
}

// LastUndo returns a copy of the most recent undo record.
func (b *Board) LastUndo() (UndoRecord, bool) {
	if len(b.history) == 0 {
		return UndoRecord{}, false
	}
	return b.history[len(b.history)-1], true
}

// Clone creates a deep copy of the board, including its undo history.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.history = append([]UndoRecord(nil), b.history...)
	return newBoard
}

// Position captures the observable board state. Two boards with equal
// Positions are indistinguishable to move generation.
type Position struct {
	Squares        [BoardSize][BoardSize]Piece
	ToMove         Colour
	Castling       CastlingRights
	HasEnPassant   bool
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}

// Position returns a snapshot of the current state.
func (b *Board) Position() Position {
	return Position{
		Squares:        b.squares,
		ToMove:         b.toMove,
		Castling:       b.castling,
		HasEnPassant:   b.hasEnPassant,
		EnPassant:      b.epSquare,
		HalfmoveClock:  b.halfmoveClock,
		FullmoveNumber: b.fullmoveNumber,
	}
}
