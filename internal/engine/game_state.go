package engine

import "github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"

// Status is what a caller needs to build outcome logic for the side to move.
type Status struct {
	ToMove     chess.Colour
	InCheck    bool
	LegalMoves int
}

// Analyze returns the check status and legal move count for the side to move.
func Analyze(board *chess.Board) Status {
	colour := board.ToMove()
	return Status{
		ToMove:     colour,
		InCheck:    board.InCheck(colour),
		LegalMoves: len(LegalMoves(board)),
	}
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return board.InCheck(colour)
}
