package engine

import "github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"

// appendPawnMoves adds single and double advances, diagonal captures and
// en passant for the pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.Direction()

	// Forward move
	if to, ok := from.Offset(dir, 0); ok && board.PieceAt(to).IsEmpty() {
		moves = appendPawnMove(moves, chess.Move{From: from, To: to}, colour)

		// Double push from starting rank
		if from.Rank == colour.PawnRank() {
			if to2, ok := from.Offset(2*dir, 0); ok && board.PieceAt(to2).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to2})
			}
		}
	}

	// Captures
	epSquare, hasEP := board.EnPassant()
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(dir, df)
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = appendPawnMove(moves, chess.Move{From: from, To: to, Capture: true}, colour)
			continue
		}
		if hasEP && to == epSquare {
			moves = append(moves, chess.Move{From: from, To: to, EnPassant: true, Capture: true})
		}
	}

	return moves
}

// appendPawnMove adds m, expanded into one move per promotion choice when
// it reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move, colour chess.Colour) []chess.Move {
	if m.To.Rank != colour.PromotionRank() {
		return append(moves, m)
	}
	for _, promo := range chess.PromotionChoices {
		m.Promotion = promo
		moves = append(moves, m)
	}
	return moves
}
