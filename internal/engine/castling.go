package engine

import "github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"

// appendCastleMoves adds kingside then queenside castling for the king on
// from when the board allows it.
func appendCastleMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	for _, side := range [2]chess.CastleSide{chess.Kingside, chess.Queenside} {
		kingFrom, kingTo, _, _ := chess.CastleSquares(colour, side)
		if from != kingFrom {
			return moves
		}
		if board.CanCastle(side) != nil {
			continue
		}
		moves = append(moves, chess.Move{From: kingFrom, To: kingTo, Castle: side})
	}
	return moves
}
