// Package chess provides the board model, move execution and attack
// detection for a standard game of chess.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn advances).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the colour's king and rooks start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Direction()
}

// PromotionRank returns the rank on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceType represents the kind of a chess piece.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p PieceType) IsPromotionChoice() bool {
	return p == Queen || p == Rook || p == Bishop || p == Knight
}

// PromotionChoices lists the promotion types in generation order.
var PromotionChoices = [...]PieceType{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is the empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// MakePiece creates a piece of the given colour and type.
func MakePiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return MakePiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return MakePiece(Black, pieceType)
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// String returns the piece letter, lowercase for black and "." for empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Square is a board coordinate. Rank and File are zero-indexed, so a1 is
// {0, 0} and h8 is {7, 7}.
type Square struct {
	Rank int
	File int
}

// NewSquare returns the square at the given rank and file.
func NewSquare(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away, and whether it is
// on the board.
func (s Square) Offset(dr, df int) (Square, bool) {
	to := Square{Rank: s.Rank + dr, File: s.File + df}
	return to, to.OnBoard()
}

// String returns the square in coordinate form, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "??"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// CastleSide identifies which rook a castling move uses.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "Kingside"
	case Queenside:
		return "Queenside"
	default:
		return "None"
	}
}

// Files used by castling on either home rank.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)

// castleFiles returns the king destination, rook origin and rook
// destination files for a castle side.
func castleFiles(side CastleSide) (kingTo, rookFrom, rookTo int) {
	if side == Kingside {
		return 6, KingsideRookFile, 5
	}
	return 2, QueensideRookFile, 3
}

// CastleSquares returns the king and rook start and end squares for
// castling on the given side.
func CastleSquares(colour Colour, side CastleSide) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := colour.HomeRank()
	kt, rf, rt := castleFiles(side)
	return Square{rank, KingFile}, Square{rank, kt}, Square{rank, rf}, Square{rank, rt}
}

// Move is a fully specified move. Castle, EnPassant and Promotion describe
// the special move kinds; Capture is informational and set by the generator.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // NoPiece unless the move promotes
	Castle    CastleSide
	EnPassant bool
	Capture   bool
}

// IsPromotion reports whether the move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// CastlingRights holds the four historical castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the set of rights at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Can reports whether colour still holds the right to castle on side.
func (r CastlingRights) Can(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return r.WhiteKingside
	case colour == White && side == Queenside:
		return r.WhiteQueenside
	case colour == Black && side == Kingside:
		return r.BlackKingside
	case colour == Black && side == Queenside:
		return r.BlackQueenside
	}
	return false
}

// Any reports whether any castling right remains.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// String returns the rights in the usual "KQkq" form, or "-" if none remain.
func (r CastlingRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// clear removes the right for colour on side.
func (r *CastlingRights) clear(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == Kingside:
		r.WhiteKingside = false
	case colour == White && side == Queenside:
		r.WhiteQueenside = false
	case colour == Black && side == Kingside:
		r.BlackKingside = false
	case colour == Black && side == Queenside:
		r.BlackQueenside = false
	}
}

// clearColour removes both rights for colour.
func (r *CastlingRights) clearColour(colour Colour) {
	r.clear(colour, Kingside)
	r.clear(colour, Queenside)
}
