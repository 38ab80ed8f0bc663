// Package hashing provides Zobrist position keys and a transposition table
// for memoised perft counts.
package hashing

import (
	"math/rand"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
)

// Zobrist keys, indexed by colour, piece type and square.
var (
	zobristPiece     [2][chess.NumPieceTypes][chess.BoardSize * chess.BoardSize]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64 // XORed in when White is to move
)

func init() {
	// Fixed seed so keys are stable between runs.
	rnd := rand.New(rand.NewSource(0x5EED))

	for c := range zobristPiece {
		for p := range zobristPiece[c] {
			for sq := range zobristPiece[c][p] {
				zobristPiece[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ZobristHash computes the key of the board's current position. Positions
// that differ only in their clocks share a key.
func ZobristHash(board *chess.Board) uint64 {
	pos := board.Position()

	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := pos.Squares[rank][file]
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristPiece[p.Colour][p.Type][rank*chess.BoardSize+file]
		}
	}

	if pos.ToMove == chess.White {
		hash ^= zobristSide
	}
	hash ^= zobristCastle[castleIndex(pos.Castling)]
	if pos.HasEnPassant {
		hash ^= zobristEnPassant[pos.EnPassant.File]
	}
	return hash
}

func castleIndex(r chess.CastlingRights) int {
	idx := 0
	if r.WhiteKingside {
		idx |= 1
	}
	if r.WhiteQueenside {
		idx |= 2
	}
	if r.BlackKingside {
		idx |= 4
	}
	if r.BlackQueenside {
		idx |= 8
	}
	return idx
}

type tableKey struct {
	hash  uint64
	depth int
}

// PerftTable records the leaf count below a position at a given depth.
// It is not safe for concurrent use; see ThreadSafePerftTable.
type PerftTable struct {
	entries map[tableKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewPerftTable creates an empty table. maxCapacity of 0 means unlimited
// capacity; a full table keeps answering lookups but stores nothing new.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for hash at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records nodes for hash at depth unless the table is full.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	key := tableKey{hash, depth}
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
}
