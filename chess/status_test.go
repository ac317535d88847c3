package chess_test

import (
	"testing"

	"chesscore/chess"
	"chesscore/internal/testutil"
)

func TestCheckmate(t *testing.T) {
	board := parse(t, "b5bk/3r4/2P1P3/1rNKNr2/2PNP3/3r4/b5b1/8 w - -")
	testutil.AssertTrue(t, board.IsCheckmate(), "d7 rook mates, both knights are pinned")
	testutil.AssertFalse(t, board.IsDraw(), "checkmate is not a draw")
	testutil.AssertTrue(t, board.IsTerminal())
	testutil.AssertFalse(t, board.HasLegalMoves(), "no moves in mate")

	// Without the b5 rook the c5 knight is unpinned and captures the
	// checker.
	relieved := parse(t, "b5bk/3r4/2P1P3/2NKNr2/2PNP3/3r4/b5b1/8 w - -")
	testutil.AssertTrue(t, relieved.InCheck(), "still in check")
	testutil.AssertFalse(t, relieved.IsCheckmate(), "Nxd7 is available")
}

func TestBackRankMate(t *testing.T) {
	board := parse(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - -")
	testutil.AssertTrue(t, board.IsCheckmate())
	testutil.AssertFalse(t, board.IsStalemate())
}

func TestStalemate(t *testing.T) {
	board := parse(t, "7k/5Q2/8/8/8/8/8/K7 b - -")
	testutil.AssertFalse(t, board.InCheck())
	testutil.AssertTrue(t, board.IsStalemate())
	testutil.AssertFalse(t, board.IsCheckmate())
	testutil.AssertTrue(t, board.IsDraw())
	testutil.AssertTrue(t, board.IsTerminal())
}

func TestMaterialDraw(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"k7/8/8/8/8/8/8/K7 w - -", true},
		{"k7/8/8/8/8/8/8/KB6 w - -", true},
		{"k7/8/8/8/8/8/8/KN6 w - -", true},
		{"kn6/8/8/8/8/8/8/K7 w - -", true},
		{"k7/8/8/8/8/8/8/KR6 w - -", false},
		{"k7/8/8/8/8/8/8/KQ6 w - -", false},
		{"k7/8/8/8/8/8/8/KP6 w - -", false},
		{"k7/8/8/8/8/8/8/KNN5 w - -", false},
		{"kn6/8/8/8/8/8/8/KN6 w - -", false},
		// Bishops on one square color cannot mate, mixed ones can.
		{"kb6/8/8/8/8/8/8/K1B5 w - -", true},
		{"kb6/8/8/8/8/8/8/KB6 w - -", false},
	}
	for _, tc := range cases {
		board := parse(t, tc.fen)
		testutil.AssertEqual(t, board.IsMaterialDraw(), tc.want, "fen %s", tc.fen)
	}
}

func TestRule50Draw(t *testing.T) {
	board := parse(t, "7k/8/8/8/8/8/8/K7 w - - 100 80")
	testutil.AssertTrue(t, board.IsRule50Draw())
	testutil.AssertTrue(t, board.IsDraw())

	young := parse(t, "7k/8/8/8/8/8/3QK3/8 w - - 99 80")
	testutil.AssertFalse(t, young.IsRule50Draw())
	testutil.AssertFalse(t, young.IsTerminal())

	// Mate on the hundredth ply still wins.
	mated := parse(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 100 90")
	testutil.AssertTrue(t, mated.IsCheckmate())
	testutil.AssertFalse(t, mated.IsRule50Draw())
	testutil.AssertFalse(t, mated.IsDraw())
	testutil.AssertTrue(t, mated.IsTerminal(), "terminal by mate, not by draw")
}

func TestRepetitionDraw(t *testing.T) {
	board := parse(t, chess.FENStartPos)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for _, ms := range shuffle {
		testutil.AssertTrue(t, board.Push(mustMove(t, ms)), "push %s", ms)
	}
	testutil.AssertFalse(t, board.IsRepetitionDraw(), "second occurrence is not yet a draw")

	for _, ms := range shuffle {
		testutil.AssertTrue(t, board.Push(mustMove(t, ms)), "push %s", ms)
	}
	testutil.AssertTrue(t, board.IsRepetitionDraw(), "third occurrence")
	testutil.AssertTrue(t, board.IsDraw())
}

// A pawn push resets the clock and cuts the repetition scan off at the
// irreversible move.
func TestRepetitionWindowResets(t *testing.T) {
	board := parse(t, chess.FENStartPos)
	moves := []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	}
	for _, ms := range moves {
		testutil.AssertTrue(t, board.Push(mustMove(t, ms)), "push %s", ms)
	}
	testutil.AssertTrue(t, board.IsRepetitionDraw())

	testutil.AssertTrue(t, board.Push(mustMove(t, "e2e4")))
	testutil.AssertFalse(t, board.IsRepetitionDraw(), "pawn push started a fresh history window")
}
