package board

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if _, err := Init(InitOptions{}); err != nil {
		panic("board: init failed in tests: " + err.Error())
	}
	os.Exit(m.Run())
}

func perft(t *testing.T, fen string, depths []int64) {
	t.Helper()
	pos, err := ParsePosition(fen)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", fen, err)
	}
	for i, want := range depths {
		depth := i + 1
		got := Perft(pos, depth)
		if got != want {
			t.Errorf("perft(%q, %d) = %d, want %d", fen, depth, got, want)
		}
	}
}

func TestPerftStartingPosition(t *testing.T) {
	perft(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		[]int64{20, 400, 8902, 197281})
}

func TestPerftEndgamePosition(t *testing.T) {
	perft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		[]int64{14, 191, 2812, 43238})
}

func TestPerftKiwipeteLike(t *testing.T) {
	perft(t, "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		[]int64{46, 2079, 89890, 3894594})
}

func TestStartingPositionMoveCount(t *testing.T) {
	pos := StartPosition()
	moves := pos.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("starting position has %d legal moves, want 20", len(moves))
	}

	pawnMoves, knightMoves := 0, 0
	for _, token := range moves {
		switch token[0] {
		case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h':
			from, err := ParseSquare(token[0:2])
			if err != nil {
				t.Fatalf("bad move token %q", token)
			}
			piece := pos.PieceAt(from)
			switch piece.Type {
			case Pawn:
				pawnMoves++
			case Knight:
				knightMoves++
			}
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Fatalf("got %d pawn moves and %d knight moves, want 16 and 4", pawnMoves, knightMoves)
	}
}

func TestScholarsMate(t *testing.T) {
	pos := StartPosition()
	for _, token := range []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"} {
		pos.ApplyMove(token)
	}
	if pos.GameInProgress() {
		t.Fatalf("expected checkmate, game still in progress")
	}
	if got := pos.Result(); got != WhiteWin {
		t.Fatalf("Result() = %v, want WhiteWin", got)
	}
}

func TestKingAndPawnStalemate(t *testing.T) {
	// White king a1 to move, boxed in by a black king on c2 and a black
	// pawn on b3 covering a2/b1/b2: no legal moves, and the king isn't
	// attacked, so this is a stalemate draw.
	pos, err := ParsePosition("8/8/8/8/8/1p6/2k5/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	if pos.GameInProgress() {
		t.Fatalf("expected no legal moves, got %v", pos.LegalMoves())
	}
	if got := pos.Result(); got != Draw {
		t.Fatalf("Result() = %v, want Draw", got)
	}
}
