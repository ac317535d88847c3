package chess_test

import (
	"fmt"
	"testing"

	"chesscore/chess"
	"chesscore/internal/testutil"
)

func TestStartingPosition(t *testing.T) {
	board := chess.NewBoard()
	testutil.AssertEqual(t, board.FEN(), chess.FENStartPos)
	testutil.AssertEqual(t, board.SideToMove(), chess.White)
	testutil.AssertEqual(t, board.FullmoveNumber(), 1)
	testutil.AssertEqual(t, board.HalfmoveClock(), 0)
	testutil.AssertTrue(t, board.Validate(), "starting position fails validation")
}

// Any FEN this package produced must reparse to the identical string
// and the identical key.
func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		chess.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"k7/8/8/3pP3/8/8/8/7K w - d6",
		"8/4k3/3p4/4p3/8/2BK4/8/8 w - -",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -",
	}
	for _, fen := range fens {
		board := parse(t, fen)
		testutil.AssertEqual(t, board.FEN(), fen, "first round trip")
		again := parse(t, board.FEN())
		testutil.AssertEqual(t, again.FEN(), fen, "second round trip")
		testutil.AssertEqual(t, again.Hash(), board.Hash(), "key differs after round trip of %s", fen)
		testutil.AssertTrue(t, board.Validate(), "parsed board fails validation: %s", fen)
	}
}

func TestFENRoundTripAllChess960Starts(t *testing.T) {
	for n := 0; n < 960; n++ {
		board, err := chess.Chess960Start(n)
		if err != nil {
			t.Fatalf("Chess960Start(%d): %v", n, err)
		}
		fen := board.FEN()
		again := parse(t, fen)
		if got := again.FEN(); got != fen {
			t.Fatalf("start %d: round trip %q -> %q", n, fen, got)
		}
		if again.Hash() != board.Hash() {
			t.Fatalf("start %d: key changed on round trip", n)
		}
		if !board.Validate() {
			t.Fatalf("start %d fails validation", n)
		}
	}
}

func TestFENCounters(t *testing.T) {
	board := parse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 12 34")
	testutil.AssertEqual(t, board.HalfmoveClock(), 12)
	testutil.AssertEqual(t, board.FullmoveNumber(), 34)
	testutil.AssertEqual(t, board.FENWithCounters(), "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 12 34")

	board = parse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 7")
	testutil.AssertEqual(t, board.HalfmoveClock(), 7)
	testutil.AssertEqual(t, board.FullmoveNumber(), 1, "fullmove default")

	board = parse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	testutil.AssertEqual(t, board.HalfmoveClock(), 0, "halfmove default")
}

func TestFENEnPassantNormalization(t *testing.T) {
	// Nothing can capture on e3, so the field must not survive the
	// parse or reach the key.
	claimed := parse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	plain := parse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	testutil.AssertEqual(t, claimed.EnPassantSquare(), chess.NoSquare)
	testutil.AssertEqual(t, claimed.Hash(), plain.Hash(), "dead en-passant field reached the key")
	testutil.AssertEqual(t, claimed.FEN(), plain.FEN())

	// With a black pawn on d4 the capture is real and the field stays.
	live := parse(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	testutil.AssertEqual(t, live.EnPassantSquare().String(), "e3")
	if live.Hash() == parse(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2").Hash() {
		t.Error("live en-passant square must distinguish the key")
	}
}

func TestFENShredderRights(t *testing.T) {
	board, err := chess.Chess960Start(0)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, board.FEN(), "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w HFhf -")
	testutil.AssertTrue(t, board.IsChess960(), "start 0 is not flagged chess960")
	testutil.AssertEqual(t, board.CastleFile(true), 7)
	testutil.AssertEqual(t, board.CastleFile(false), 5)

	// Classical letters on the same position resolve to the outermost
	// rooks and export in Shredder form.
	xfen := parse(t, "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w KQkq -")
	testutil.AssertEqual(t, xfen.FEN(), board.FEN())
	testutil.AssertEqual(t, xfen.Hash(), board.Hash())
}

// A setup with corner rooks and the king on e castles like standard
// chess, but Shredder writers still spell its rights as file letters.
// The spelling chooses the convention: letters keep the board Chess960
// so the rights field round-trips, classical letters keep it standard.
func TestFENShredderRightsOnClassicalGeometry(t *testing.T) {
	shredder := parse(t, "rbbqknnr/pppppppp/8/8/8/8/PPPPPPPP/RBBQKNNR w HAha -")
	testutil.AssertTrue(t, shredder.IsChess960())
	testutil.AssertEqual(t, shredder.FEN(), "rbbqknnr/pppppppp/8/8/8/8/PPPPPPPP/RBBQKNNR w HAha -")

	classical := parse(t, "rbbqknnr/pppppppp/8/8/8/8/PPPPPPPP/RBBQKNNR w KQkq -")
	testutil.AssertFalse(t, classical.IsChess960())
	testutil.AssertEqual(t, classical.FEN(), "rbbqknnr/pppppppp/8/8/8/8/PPPPPPPP/RBBQKNNR w KQkq -")

	// The convention is presentation only and never reaches the key.
	testutil.AssertEqual(t, shredder.Hash(), classical.Hash())
}

func TestFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/ppplpppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -3 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
	}
	for i, fen := range bad {
		_, err := chess.ParseFEN(fen)
		testutil.AssertError(t, err, fmt.Sprintf("case %d: %q parsed", i, fen))
	}
}

// Rights whose rook or king is missing are dropped rather than
// rejected, matching how position setup tools clean up imports.
func TestFENDropsImpossibleRights(t *testing.T) {
	board := parse(t, "4k3/8/8/8/8/8/8/R3K3 w KQkq -")
	testutil.AssertTrue(t, board.CanCastle(chess.White, false), "a1 rook right dropped")
	testutil.AssertFalse(t, board.CanCastle(chess.White, true), "kingside right kept without a rook")
	testutil.AssertFalse(t, board.CanCastle(chess.Black, true), "black kingside kept without a rook")
	testutil.AssertFalse(t, board.CanCastle(chess.Black, false), "black queenside kept without a rook")
	testutil.AssertEqual(t, board.FEN(), "4k3/8/8/8/8/8/8/R3K3 w Q -")
}
