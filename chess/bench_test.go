package chess_test

import (
	"testing"

	"chesscore/chess"
)

const (
	fenKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	fenMidgame  = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - -"
)

func benchGenerateMoves(b *testing.B, fen string) {
	board := parse(b, fen)
	buf := make([]chess.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMoves(buf)
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, chess.FENStartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, fenKiwipete)
}

func BenchmarkGenerateMoves_Midgame(b *testing.B) {
	benchGenerateMoves(b, fenMidgame)
}

func BenchmarkGenerateCaptures_Kiwipete(b *testing.B) {
	board := parse(b, fenKiwipete)
	buf := make([]chess.Move, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateCaptures(buf)
	}
}

func BenchmarkCountMoves_Kiwipete(b *testing.B) {
	board := parse(b, fenKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if board.CountMoves() != 48 {
			b.Fatal("wrong move count")
		}
	}
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	board := parse(b, chess.FENStartPos)
	moves := board.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			u := board.DoMove(m)
			board.UndoMove(m, u)
		}
	}
}

func benchPerft(b *testing.B, fen string, depth int) {
	board := parse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, chess.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, fenKiwipete, 3)
}

func BenchmarkSEE_Kiwipete(b *testing.B) {
	board := parse(b, fenKiwipete)
	caps := board.GenerateCaptures(nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range caps {
			_ = board.SEE(m)
		}
	}
}

func BenchmarkCompress_Initial(b *testing.B) {
	board := parse(b, chess.FENStartPos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Compress()
	}
}

func BenchmarkParseFEN_Kiwipete(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := chess.ParseFEN(fenKiwipete); err != nil {
			b.Fatal(err)
		}
	}
}
