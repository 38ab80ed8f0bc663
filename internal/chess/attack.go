package chess

// Direction tables shared by attack detection and move generation.
var (
	KnightOffsets    = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	KingOffsets      = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	RookDirections   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	BishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// InCheck returns true if the given colour's king is attacked.
// A colour with no king on the board is never in check.
func (b *Board) InCheck(colour Colour) bool {
	sq, ok := b.KingSquare(colour)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(sq, colour.Opposite())
}

// KingSquare finds the king of the given colour on the board.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.squares[rank][file].Is(colour, King) {
				return Square{rank, file}, true
			}
		}
	}
	return Square{}, false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Occupancy of the square itself is irrelevant.
func (b *Board) IsSquareAttacked(sq Square, by Colour) bool {
	// Pawns of colour by attack from one rank behind, relative to their advance.
	dir := by.Direction()
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(-dir, df); ok && b.PieceAt(from).Is(by, Pawn) {
			return true
		}
	}

	for _, off := range KnightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && b.PieceAt(from).Is(by, Knight) {
			return true
		}
	}

	for _, off := range KingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && b.PieceAt(from).Is(by, King) {
			return true
		}
	}

	for _, dir := range BishopDirections {
		if p := b.firstAlongRay(sq, dir); p.Colour == by && (p.Type == Bishop || p.Type == Queen) {
			return true
		}
	}

	for _, dir := range RookDirections {
		if p := b.firstAlongRay(sq, dir); p.Colour == by && (p.Type == Rook || p.Type == Queen) {
			return true
		}
	}

	return false
}

// firstAlongRay returns the first piece met stepping from sq in dir, or the
// empty Piece if the ray leaves the board first.
func (b *Board) firstAlongRay(sq Square, dir [2]int) Piece {
	cur, ok := sq.Offset(dir[0], dir[1])
	for ok {
		if p := b.PieceAt(cur); !p.IsEmpty() {
			return p
		}
		cur, ok = cur.Offset(dir[0], dir[1])
	}
	return Piece{}
}
