package engine

import "github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"

// appendStepMoves adds the single-step destinations given by offsets, used
// by knights and kings.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := board.PieceAt(to)
		if target.IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: to})
		} else if target.Colour != colour {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true})
		}
	}
	return moves
}

// appendSlidingMoves casts one ray per direction. Each ray includes every
// empty square, includes and stops at the first enemy piece, and stops
// before a friendly piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.PieceAt(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
