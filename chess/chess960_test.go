package chess_test

import (
	"testing"

	"chesscore/chess"
	"chesscore/internal/testutil"
)

func TestChess960StartClassical(t *testing.T) {
	board, err := chess.Chess960Start(518)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.FEN(), chess.FENStartPos)
	testutil.AssertFalse(t, board.IsChess960(), "number 518 is the standard setup")
}

func TestChess960StartKnownNumbers(t *testing.T) {
	cases := map[int]string{
		0:   "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w HFhf -",
		959: "rkrnnqbb/pppppppp/8/8/8/8/PPPPPPPP/RKRNNQBB w CAca -",
	}
	for n, want := range cases {
		board, err := chess.Chess960Start(n)
		testutil.AssertNoError(t, err, "number %d", n)
		testutil.AssertEqual(t, board.FEN(), want, "number %d", n)
		testutil.AssertTrue(t, board.IsChess960(), "number %d", n)
	}
}

func TestChess960StartRange(t *testing.T) {
	for _, n := range []int{-1, 960, 5000} {
		if _, err := chess.Chess960Start(n); err == nil {
			t.Errorf("number %d accepted", n)
		}
	}
}

// Scharnagl's scheme places the king between the rooks and the bishops
// on opposite square colors, and no two numbers share a setup.
func TestChess960StartAllSetups(t *testing.T) {
	seen := make(map[string]int, 960)
	for n := 0; n < 960; n++ {
		board, err := chess.Chess960Start(n)
		testutil.AssertNoError(t, err, "number %d", n)
		testutil.AssertTrue(t, board.Validate(), "number %d inconsistent", n)

		fen := board.FEN()
		if prev, dup := seen[fen]; dup {
			t.Fatalf("numbers %d and %d both give %s", prev, n, fen)
		}
		seen[fen] = n

		reparsed, err := chess.ParseFEN(fen)
		testutil.AssertNoError(t, err, "number %d", n)
		testutil.AssertEqual(t, reparsed.IsChess960(), board.IsChess960(), "number %d flag lost in round trip", n)

		kingFile := board.KingSquare(chess.White).File()
		if !(board.CastleFile(false) < kingFile && kingFile < board.CastleFile(true)) {
			t.Errorf("number %d: king file %d not between rook files %d and %d",
				n, kingFile, board.CastleFile(false), board.CastleFile(true))
		}

		var bishopFiles []int
		for f := 0; f < 8; f++ {
			if board.PieceAt(chess.NewSquare(f, 0)) == chess.WhiteBishop {
				bishopFiles = append(bishopFiles, f)
			}
		}
		if len(bishopFiles) != 2 || (bishopFiles[0]+bishopFiles[1])%2 == 0 {
			t.Errorf("number %d: bishops on files %v share a square color", n, bishopFiles)
		}

		testutil.AssertFalse(t, board.InCheck(), "number %d starts in check", n)
	}
}
