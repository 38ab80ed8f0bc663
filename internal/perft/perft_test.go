package perft

import (
	"context"
	"errors"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/hashing"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/testutil"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	epPinFEN     = "8/8/8/KPp4r/8/8/8/7k w - c6 0 2"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 0", testutil.InitialFEN, 0, 1},
		{"initial depth 1", testutil.InitialFEN, 1, 20},
		{"initial depth 2", testutil.InitialFEN, 2, 400},
		{"initial depth 3", testutil.InitialFEN, 3, 8902},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039},
		{"position 3 depth 1", position3FEN, 1, 14},
		{"position 3 depth 2", position3FEN, 2, 191},
		{"position 3 depth 3", position3FEN, 3, 2812},
		{"position 4 depth 1", position4FEN, 1, 6},
		{"position 4 depth 2", position4FEN, 2, 264},
		{"position 5 depth 1", position5FEN, 1, 44},
		{"position 5 depth 2", position5FEN, 2, 1486},
		{"en passant pin depth 1", epPinFEN, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			before := board.Position()

			got, err := Count(board, tt.depth)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Count(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertPosition(t, board, before, "board restored")
		})
	}
}

func TestCount_Deep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	board := chess.NewBoard()
	got, err := Count(board, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(197281))

	board = testutil.MustBoard(t, kiwipeteFEN)
	got, err = Count(board, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(97862))
}

func TestDivide(t *testing.T) {
	board := chess.NewBoard()
	results, err := Divide(board, 2)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(results), 20)
	testutil.AssertEqual(t, Total(results), uint64(400))
	for i := 1; i < len(results); i++ {
		if results[i-1].Move >= results[i].Move {
			t.Fatalf("results not sorted: %s before %s", results[i-1].Move, results[i].Move)
		}
	}
	testutil.AssertEqual(t, results[0], Result{Move: "a2a3", Nodes: 20})
}

func TestDivide_ZeroDepth(t *testing.T) {
	results, err := Divide(chess.NewBoard(), 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 0)
}

func TestParallelDivide(t *testing.T) {
	for _, fen := range []string{testutil.InitialFEN, kiwipeteFEN, position3FEN, epPinFEN} {
		t.Run(fen, func(t *testing.T) {
			board := testutil.MustBoard(t, fen)
			before := board.Position()

			want, err := Divide(board, 2)
			testutil.AssertNoError(t, err)

			got, err := ParallelDivide(context.Background(), board, 2, 4)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want)
			testutil.AssertPosition(t, board, before, "root board untouched")
		})
	}
}

func TestParallelDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelDivide(ctx, chess.NewBoard(), 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParallelDivide() error = %v, want context.Canceled", err)
	}
}

func TestParallelDivide_NoMoves(t *testing.T) {
	board := testutil.MustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	got, err := ParallelDivide(context.Background(), board, 2, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got), 0)
}

func TestCountCached(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 3", testutil.InitialFEN, 3, 8902},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039},
		{"position 3 depth 3", position3FEN, 3, 2812},
		{"position 4 depth 2", position4FEN, 2, 264},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			before := board.Position()
			table := hashing.NewPerftTable(0)

			got, err := CountCached(board, tt.depth, table)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertPosition(t, board, before, "board restored")

			// A second count is answered from the table.
			got, err = CountCached(board, tt.depth, table)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			if table.Hits() == 0 {
				t.Error("second count made no table hits")
			}
		})
	}
}

func TestCountCached_FullTable(t *testing.T) {
	table := hashing.NewPerftTable(1)
	got, err := CountCached(chess.NewBoard(), 3, table)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(8902))
	testutil.AssertEqual(t, table.Len(), 1)
}

func TestParallelDivideCached(t *testing.T) {
	board := testutil.MustBoard(t, kiwipeteFEN)
	want, err := Divide(board, 3)
	testutil.AssertNoError(t, err)

	table := hashing.NewThreadSafePerftTable(0)
	got, err := ParallelDivideCached(context.Background(), board, 3, 4, table)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want)

	got, err = DivideCached(board, 3, table)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, want)
}

// referencePerft counts leaves with dragontoothmg.
func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestCount_MatchesReference(t *testing.T) {
	fens := []string{
		testutil.InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			ref := dragontoothmg.ParseFen(fen)
			results, err := Divide(testutil.MustBoard(t, fen), 2)
			testutil.AssertNoError(t, err)

			want := map[string]uint64{}
			for _, m := range ref.GenerateLegalMoves() {
				unapply := ref.Apply(m)
				want[m.String()] = referencePerft(&ref, 1)
				unapply()
			}
			got := map[string]uint64{}
			for _, r := range results {
				got[r.Move] = r.Nodes
			}
			testutil.AssertEqual(t, got, want)
		})
	}
}
