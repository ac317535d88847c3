package chess

import "fmt"

// knightPairs lists the ten placements of two knights on five free
// squares, in Scharnagl order.
var knightPairs = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960Start returns the starting position with the given Scharnagl
// number, 0 through 959. Number 518 is the classical setup. Setups
// whose rooks start on the corner files with the king on e castle
// exactly like standard chess and come out as plain standard boards.
func Chess960Start(n int) (*Board, error) {
	if n < 0 || n > 959 {
		return nil, fmt.Errorf("chess: chess960 number %d out of range 0..959", n)
	}

	var types [8]PieceType

	// Bishops on opposite square colors, then the queen on one of the
	// six free files, then the knight pair, then rook king rook.
	q, b1 := n/4, n%4
	types[2*b1+1] = Bishop
	q2, b2 := q/4, q%4
	types[2*b2] = Bishop

	n4, qf := q2/6, q2%6

	freeFiles := func() []int {
		f := make([]int, 0, 6)
		for i, t := range types {
			if t == NoPieceType {
				f = append(f, i)
			}
		}
		return f
	}

	types[freeFiles()[qf]] = Queen

	free := freeFiles()
	pair := knightPairs[n4]
	types[free[pair[0]]] = Knight
	types[free[pair[1]]] = Knight

	free = freeFiles()
	types[free[0]], types[free[1]], types[free[2]] = Rook, King, Rook

	b := &Board{
		kingSq:         [2]Square{NoSquare, NoSquare},
		castleRights:   AllCastleRights,
		castleFiles:    [2]int{free[2], free[0]},
		epSquare:       NoSquare,
		fullmoveNumber: 1,
	}
	for f := 0; f < 8; f++ {
		b.putPiece(MakePiece(White, types[f]), NewSquare(f, 0))
		b.putPiece(MakePiece(White, Pawn), NewSquare(f, 1))
		b.putPiece(MakePiece(Black, Pawn), NewSquare(f, 6))
		b.putPiece(MakePiece(Black, types[f]), NewSquare(f, 7))
	}
	b.chess960 = b.detectChess960()
	b.key = b.computeKey()
	b.refresh()
	return b, nil
}
