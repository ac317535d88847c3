package chess

import (
	"math/bits"
	"strings"
)

// SquareSet represents a set of squares as a 64-bit mask.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8.
// Union, intersection, complement and difference are the bitwise
// |, &, ^ and &^ operators.
type SquareSet uint64

// File masks
const (
	FileA SquareSet = 0x0101010101010101
	FileB SquareSet = 0x0202020202020202
	FileC SquareSet = 0x0404040404040404
	FileD SquareSet = 0x0808080808080808
	FileE SquareSet = 0x1010101010101010
	FileF SquareSet = 0x2020202020202020
	FileG SquareSet = 0x4040404040404040
	FileH SquareSet = 0x8080808080808080
)

// Rank masks
const (
	Rank1 SquareSet = 0x00000000000000FF
	Rank2 SquareSet = 0x000000000000FF00
	Rank3 SquareSet = 0x0000000000FF0000
	Rank4 SquareSet = 0x00000000FF000000
	Rank5 SquareSet = 0x000000FF00000000
	Rank6 SquareSet = 0x0000FF0000000000
	Rank7 SquareSet = 0x00FF000000000000
	Rank8 SquareSet = 0xFF00000000000000
)

const (
	notFileA SquareSet = ^FileA
	notFileH SquareSet = ^FileH
)

// FileMask holds the file mask for each file (0-7).
var FileMask = [8]SquareSet{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask holds the rank mask for each rank (0-7).
var RankMask = [8]SquareSet{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// SquareBB returns a set containing only the given square.
func SquareBB(sq Square) SquareSet {
	return 1 << sq
}

// Set returns the set with the given square added.
func (ss SquareSet) Set(sq Square) SquareSet {
	return ss | (1 << sq)
}

// Clear returns the set with the given square removed.
func (ss SquareSet) Clear(sq Square) SquareSet {
	return ss &^ (1 << sq)
}

// IsSet reports whether the given square is a member.
func (ss SquareSet) IsSet(sq Square) bool {
	return ss&(1<<sq) != 0
}

// Toggle flips membership of the given square.
func (ss SquareSet) Toggle(sq Square) SquareSet {
	return ss ^ (1 << sq)
}

// PopCount returns the number of member squares.
func (ss SquareSet) PopCount() int {
	return bits.OnesCount64(uint64(ss))
}

// LSB returns the lowest member square, NoSquare if the set is empty.
func (ss SquareSet) LSB() Square {
	if ss == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(ss)))
}

// MSB returns the highest member square, NoSquare if the set is empty.
func (ss SquareSet) MSB() Square {
	if ss == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(ss)))
}

// PopLSB removes and returns the lowest member square.
func (ss *SquareSet) PopLSB() Square {
	sq := ss.LSB()
	*ss &= *ss - 1
	return sq
}

// More reports whether the set has at least two members.
func (ss SquareSet) More() bool {
	return ss&(ss-1) != 0
}

// IsEmpty reports whether no squares are members.
func (ss SquareSet) IsEmpty() bool {
	return ss == 0
}

// Directional shifts. All of them mask off file wrap-around, so a set
// shifted across the a/h edge loses those members instead of reappearing
// on the opposite edge.

// North shifts the set one rank up (toward rank 8).
func (ss SquareSet) North() SquareSet {
	return ss << 8
}

// South shifts the set one rank down (toward rank 1).
func (ss SquareSet) South() SquareSet {
	return ss >> 8
}

// East shifts the set one file right (toward file h).
func (ss SquareSet) East() SquareSet {
	return (ss << 1) & notFileA
}

// West shifts the set one file left (toward file a).
func (ss SquareSet) West() SquareSet {
	return (ss >> 1) & notFileH
}

// NorthEast shifts the set one square diagonally toward h8.
func (ss SquareSet) NorthEast() SquareSet {
	return (ss << 9) & notFileA
}

// NorthWest shifts the set one square diagonally toward a8.
func (ss SquareSet) NorthWest() SquareSet {
	return (ss << 7) & notFileH
}

// SouthEast shifts the set one square diagonally toward h1.
func (ss SquareSet) SouthEast() SquareSet {
	return (ss >> 7) & notFileA
}

// SouthWest shifts the set one square diagonally toward a1.
func (ss SquareSet) SouthWest() SquareSet {
	return (ss >> 9) & notFileH
}

// Shift moves the whole set by one king step in the direction of d.
// Only the eight single-step deltas are supported.
func (ss SquareSet) Shift(d SquareDelta) SquareSet {
	switch d {
	case DeltaN:
		return ss.North()
	case DeltaS:
		return ss.South()
	case DeltaE:
		return ss.East()
	case DeltaW:
		return ss.West()
	case DeltaNE:
		return ss.NorthEast()
	case DeltaNW:
		return ss.NorthWest()
	case DeltaSE:
		return ss.SouthEast()
	case DeltaSW:
		return ss.SouthWest()
	}
	return 0
}

// Squares returns all member squares in ascending order.
func (ss SquareSet) Squares() []Square {
	squares := make([]Square, 0, ss.PopCount())
	for ss != 0 {
		squares = append(squares, ss.PopLSB())
	}
	return squares
}

// String returns a board diagram of the set.
func (ss SquareSet) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if ss.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
