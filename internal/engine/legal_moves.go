package engine

import (
	"fmt"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
)

// LegalMoves returns the legal moves for the side to move, in generation order.
func LegalMoves(board *chess.Board) []chess.Move {
	return keepLegal(board, PseudoLegalMoves(board))
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func LegalMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	return keepLegal(board, PseudoLegalMovesFrom(board, sq))
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, m := range PseudoLegalMoves(board) {
		if generatedLeavesKingSafe(board, m) {
			return true
		}
	}
	return false
}

// FilterLegal returns the candidates that do not leave the mover's king
// attacked, preserving their order. Candidates are applied one at a time and
// always reverted. The first candidate the board rejects aborts the filter
// with its error; the board is unchanged either way.
func FilterLegal(board *chess.Board, candidates []chess.Move) ([]chess.Move, error) {
	legal := make([]chess.Move, 0, len(candidates))
	for i, m := range candidates {
		ok, err := leavesKingSafe(board, m)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if ok {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// keepLegal filters generator output in place.
func keepLegal(board *chess.Board, candidates []chess.Move) []chess.Move {
	legal := candidates[:0]
	for _, m := range candidates {
		if generatedLeavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// generatedLeavesKingSafe is leavesKingSafe for a move produced by the
// generator. The board rejecting such a move is a generator bug, so it
// panics instead of dropping the move.
func generatedLeavesKingSafe(board *chess.Board, m chess.Move) bool {
	ok, err := leavesKingSafe(board, m)
	if err != nil {
		panic(fmt.Sprintf("engine: generated move %s rejected: %v", m, err))
	}
	return ok
}

// leavesKingSafe plays m speculatively and reports whether the mover's king
// is unattacked afterwards.
func leavesKingSafe(board *chess.Board, m chess.Move) (bool, error) {
	mover := board.ToMove()
	trial, err := speculate(board, m)
	if err != nil {
		return false, err
	}
	defer trial.release()

	return !board.InCheck(mover), nil
}

// speculation is one pending trial move. release undoes it exactly once.
type speculation struct {
	board   *chess.Board
	ply     int
	pending bool
}

// speculate applies m and returns the pending speculation. Nothing needs
// releasing when it fails, since a rejected move leaves the board untouched.
func speculate(board *chess.Board, m chess.Move) (*speculation, error) {
	ply := board.Ply()
	if err := board.MakeMove(m); err != nil {
		return nil, err
	}
	return &speculation{board: board, ply: ply, pending: true}, nil
}

// release reverts the speculative move if it is still on the board.
func (s *speculation) release() {
	if !s.pending {
		return
	}
	s.pending = false
	if s.board.Ply() != s.ply+1 {
		panic(fmt.Sprintf("engine: speculative move released at ply %d, want %d", s.board.Ply(), s.ply+1))
	}
	s.board.UndoMove()
}
