// Package engine provides move generation and legality filtering on top of
// the chess board model.
package engine

import "github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"

// PseudoLegalMoves returns every move for the side to move that obeys
// piece movement rules, whether or not it leaves the mover's king in check.
// Squares are visited a1..h1, a2..h2, up to h8.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove()
	moves := make([]chess.Move, 0, 48)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(rank, file)
			piece := board.PieceAt(sq)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = appendPieceMoves(moves, board, sq, piece)
		}
	}
	return moves
}

// PseudoLegalMovesFrom returns the pseudo-legal moves of the piece on sq.
// It returns nil if sq is empty or holds a piece of the side not to move.
func PseudoLegalMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	piece := board.PieceAt(sq)
	if piece.IsEmpty() || piece.Colour != board.ToMove() {
		return nil
	}
	return appendPieceMoves(nil, board, sq, piece)
}

// appendPieceMoves dispatches on the piece type.
func appendPieceMoves(moves []chess.Move, board *chess.Board, sq chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Type {
	case chess.Pawn:
		return appendPawnMoves(moves, board, sq, piece.Colour)
	case chess.Knight:
		return appendStepMoves(moves, board, sq, piece.Colour, chess.KnightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(moves, board, sq, piece.Colour, chess.BishopDirections[:])
	case chess.Rook:
		return appendSlidingMoves(moves, board, sq, piece.Colour, chess.RookDirections[:])
	case chess.Queen:
		moves = appendSlidingMoves(moves, board, sq, piece.Colour, chess.RookDirections[:])
		return appendSlidingMoves(moves, board, sq, piece.Colour, chess.BishopDirections[:])
	case chess.King:
		moves = appendStepMoves(moves, board, sq, piece.Colour, chess.KingOffsets[:])
		return appendCastleMoves(moves, board, sq, piece.Colour)
	}
	return moves
}
