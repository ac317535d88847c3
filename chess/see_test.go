package chess_test

import (
	"testing"

	"chesscore/chess"
	"chesscore/internal/testutil"
)

func TestSEEDefendedPawn(t *testing.T) {
	// Bishop wins a pawn but is lost to the d6 pawn's recapture.
	board := parse(t, "8/4k3/3p4/4p3/8/2BK4/8/8 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "c3e5")), -2)
}

func TestSEEXrayRecapture(t *testing.T) {
	// Same exchange, but the queen behind the bishop recaptures through
	// the vacated c3 square.
	board := parse(t, "8/4k3/3p4/4p3/8/2BK4/1Q6/8 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "c3e5")), -1)
}

func TestSEEUndefendedCapture(t *testing.T) {
	board := parse(t, "1k6/8/8/4p3/8/8/8/1K2R3 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "e1e5")), 1)
}

func TestSEEEqualRookTrade(t *testing.T) {
	board := parse(t, "1k6/8/3p4/4r3/8/8/8/1K2R3 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "e1e5")), 0)
}

func TestSEEPawnChain(t *testing.T) {
	board := parse(t, "k7/8/5p2/4p3/3P4/8/8/K7 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "d4e5")), 0)
}

// The defending king is the recapturer here, which it may be only
// because no further black piece bears on e2.
func TestSEEKingRecaptures(t *testing.T) {
	board := parse(t, "1k6/8/8/8/8/5q2/4P3/3K4 b - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "f3e2")), -8)
}

func TestSEEEnPassant(t *testing.T) {
	plain := parse(t, "k7/8/8/3pP3/8/8/8/7K w - d6")
	testutil.AssertEqual(t, plain.SEE(mustMove(t, "e5d6")), 1)

	defended := parse(t, "k7/2p5/8/3pP3/8/8/8/7K w - d6")
	testutil.AssertEqual(t, defended.SEE(mustMove(t, "e5d6")), 0)
}

func TestSEEQuietMoves(t *testing.T) {
	board := parse(t, "1k6/4r3/8/8/8/8/8/1K1R4 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "d1d7")), -5, "rook hangs on d7")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "d1d4")), 0, "d4 is safe")
}

func TestSEECastleAndNull(t *testing.T) {
	board := parse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "e1g1")), 0)
	testutil.AssertEqual(t, board.SEE(chess.NullMove), 0)
}

// A capture of an undefended piece comes out at the victim's full
// value.
func TestSEELooseTarget(t *testing.T) {
	board := parse(t, "k7/8/8/8/3n4/8/8/K2R4 w - -")
	testutil.AssertEqual(t, board.SEE(mustMove(t, "d1d4")), 3, "rook takes loose knight")
}
