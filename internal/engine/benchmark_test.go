package engine

import (
	"testing"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   testutil.InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkPseudoLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := testutil.MustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PseudoLegalMoves(board)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := testutil.MustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board)
			}
		})
	}
}

func BenchmarkMakeUndo(b *testing.B) {
	sq := func(s string) chess.Square { return testutil.MustSquare(b, s) }
	cases := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{"PawnMove", benchFENs["Initial"], chess.Move{From: sq("e2"), To: sq("e4")}},
		{"PieceMove", benchFENs["Initial"], chess.Move{From: sq("g1"), To: sq("f3")}},
		{"KingsideCastle", benchFENs["Castling"], chess.Move{From: sq("e1"), To: sq("g1"), Castle: chess.Kingside}},
		{"QueensideCastle", benchFENs["Castling"], chess.Move{From: sq("e1"), To: sq("c1"), Castle: chess.Queenside}},
		{"EnPassant", benchFENs["EnPassant"], chess.Move{From: sq("f5"), To: sq("e6"), EnPassant: true, Capture: true}},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Queen}},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board := testutil.MustBoard(b, tt.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := board.MakeMove(tt.move); err != nil {
					b.Fatal(err)
				}
				board.UndoMove()
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board := testutil.MustBoard(b, benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board := testutil.MustBoard(b, checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board := testutil.MustBoard(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board)
			}
		})
	}
}

func BenchmarkBoardClone(b *testing.B) {
	board := testutil.MustBoard(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Clone()
	}
}
