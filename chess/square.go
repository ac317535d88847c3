// Package chess implements a bitboard chess position core: board
// representation with incremental Zobrist hashing, legal move generation,
// make/unmake with exact undo, FEN and compact binary codecs, and the
// perft and static-exchange correctness oracles. Chess960 castling is
// supported throughout.
package chess

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square int8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// SquareFromString parses algebraic notation (e.g. "e4") into a Square.
// Returns NoSquare on anything that is not a well-formed square name.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return NewSquare(file, rank)
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool {
	return sq >= A1 && sq <= H8
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// String returns the algebraic notation for the square (e.g. "e4"),
// or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// SquareDelta is a signed offset between squares, used for directional
// stepping. Deltas add and scale as plain integers (e.g. 2*DeltaN for a
// double pawn push).
type SquareDelta int8

const (
	DeltaN SquareDelta = 8
	DeltaS SquareDelta = -8
	DeltaE SquareDelta = 1
	DeltaW SquareDelta = -1

	DeltaNE = DeltaN + DeltaE
	DeltaNW = DeltaN + DeltaW
	DeltaSE = DeltaS + DeltaE
	DeltaSW = DeltaS + DeltaW
)

// PawnPush returns the single-push delta for a pawn of the given color.
func PawnPush(c Color) SquareDelta {
	if c == White {
		return DeltaN
	}
	return DeltaS
}

// Add steps the square by a delta. The result may be off the board
// (check IsValid); stepping across the a/h file edge is not detected
// here, callers step only within precomputed masks.
func (sq Square) Add(d SquareDelta) Square {
	return Square(int8(sq) + int8(d))
}
