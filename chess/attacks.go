package chess

import "math/bits"

// Precomputed attack tables for non-sliding pieces.
var (
	knightAttacks [64]SquareSet
	kingAttacks   [64]SquareSet
	pawnAttacks   [2][64]SquareSet // [Color][Square]

	// Between and Line tables for pins, checks and evasion masks.
	betweenBB [64][64]SquareSet // squares strictly between two squares
	lineBB    [64][64]SquareSet // full line through two squares, endpoints included
)

// Per-square occupancy masks and attack tables for sliders, indexed with a
// software pext of the relevant occupancy. Built once at init, immutable
// afterwards and safe to share across goroutines.
var (
	rookMask   [64]SquareSet
	bishopMask [64]SquareSet

	rookAttackTable   [64][]SquareSet
	bishopAttackTable [64][]SquareSet
)

// Direction vectors as {file step, rank step}.
var (
	rookDirs   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func init() {
	initStepAttacks()
	initLines()
	initSliderTables()
}

func initStepAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		knightAttacks[sq] = bb.North().NorthEast() | bb.North().NorthWest() |
			bb.South().SouthEast() | bb.South().SouthWest() |
			bb.East().NorthEast() | bb.East().SouthEast() |
			bb.West().NorthWest() | bb.West().SouthWest()

		kingAttacks[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

func initLines() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			f1, r1 := sq1.File(), sq1.Rank()
			f2, r2 := sq2.File(), sq2.Rank()

			df := sign(f2 - f1)
			dr := sign(r2 - r1)
			if df == 0 && dr == 0 {
				continue
			}
			if df != 0 && dr != 0 && abs(f2-f1) != abs(r2-r1) {
				// Neither orthogonal nor diagonal; tables stay empty.
				continue
			}

			var between SquareSet
			for f, r := f1+df, r1+dr; f != f2 || r != r2; f, r = f+df, r+dr {
				between = between.Set(NewSquare(f, r))
			}
			betweenBB[sq1][sq2] = between

			var line SquareSet
			for f, r := f1, r1; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f-df, r-dr {
				line = line.Set(NewSquare(f, r))
			}
			for f, r := f1+df, r1+dr; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+df, r+dr {
				line = line.Set(NewSquare(f, r))
			}
			lineBB[sq1][sq2] = line
		}
	}
}

// initSliderTables enumerates, for every square, all occupancy subsets of the
// relevant mask (edges excluded) and fills the attack tables from a ray walk.
func initSliderTables() {
	for sq := A1; sq <= H8; sq++ {
		rookMask[sq] = relevantMask(sq, rookDirs)
		bishopMask[sq] = relevantMask(sq, bishopDirs)

		rookAttackTable[sq] = make([]SquareSet, 1<<rookMask[sq].PopCount())
		for idx := range rookAttackTable[sq] {
			occ := SquareSet(pdep(uint64(idx), uint64(rookMask[sq])))
			rookAttackTable[sq][idx] = slidingAttacksSlow(sq, occ, rookDirs)
		}

		bishopAttackTable[sq] = make([]SquareSet, 1<<bishopMask[sq].PopCount())
		for idx := range bishopAttackTable[sq] {
			occ := SquareSet(pdep(uint64(idx), uint64(bishopMask[sq])))
			bishopAttackTable[sq][idx] = slidingAttacksSlow(sq, occ, bishopDirs)
		}
	}
}

// relevantMask returns the ray squares whose occupancy can change the attack
// set, which excludes the final square of each ray.
func relevantMask(sq Square, dirs [4][2]int) SquareSet {
	var mask SquareSet
	f0, r0 := sq.File(), sq.Rank()
	for _, d := range dirs {
		for f, r := f0+d[0], r0+d[1]; ; f, r = f+d[0], r+d[1] {
			nf, nr := f+d[0], r+d[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break
			}
			mask = mask.Set(NewSquare(f, r))
		}
	}
	return mask
}

// slidingAttacksSlow walks each ray up to and including the first blocker.
// Reference implementation used to fill the lookup tables.
func slidingAttacksSlow(sq Square, occ SquareSet, dirs [4][2]int) SquareSet {
	var att SquareSet
	f0, r0 := sq.File(), sq.Rank()
	for _, d := range dirs {
		for f, r := f0+d[0], r0+d[1]; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+d[0], r+d[1] {
			s := NewSquare(f, r)
			att = att.Set(s)
			if occ.IsSet(s) {
				break
			}
		}
	}
	return att
}

// pext extracts the bits of x at the mask's set positions, packed into the
// low bits (software fallback for the BMI2 instruction).
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// pdep deposits the low bits of x into the mask's set positions.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// KnightAttacks returns the knight attack set for a square.
func KnightAttacks(sq Square) SquareSet {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack set for a square.
func KingAttacks(sq Square) SquareSet {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of the given color attacks from sq.
func PawnAttacks(c Color, sq Square) SquareSet {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the bishop attack set from sq given the occupancy:
// every square along a diagonal up to and including the first blocker.
func BishopAttacks(sq Square, occ SquareSet) SquareSet {
	return bishopAttackTable[sq][pext(uint64(occ), uint64(bishopMask[sq]))]
}

// RookAttacks returns the rook attack set from sq given the occupancy.
func RookAttacks(sq Square, occ SquareSet) SquareSet {
	return rookAttackTable[sq][pext(uint64(occ), uint64(rookMask[sq]))]
}

// QueenAttacks returns the queen attack set from sq given the occupancy.
func QueenAttacks(sq Square, occ SquareSet) SquareSet {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// PieceAttacks returns the attack set for a colorless piece type on sq.
// Pawns are directional, use PawnAttacks instead; NoPieceType and Pawn
// yield the empty set.
func PieceAttacks(pt PieceType, sq Square, occ SquareSet) SquareSet {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return kingAttacks[sq]
	}
	return 0
}

// Between returns the squares strictly between two squares, empty when the
// squares are not aligned on a rank, file or diagonal.
func Between(sq1, sq2 Square) SquareSet {
	return betweenBB[sq1][sq2]
}

// Line returns the full line through two aligned squares, endpoints
// included; empty when not aligned.
func Line(sq1, sq2 Square) SquareSet {
	return lineBB[sq1][sq2]
}

// Aligned reports whether sq3 lies on the line through sq1 and sq2.
func Aligned(sq1, sq2, sq3 Square) bool {
	return lineBB[sq1][sq2].IsSet(sq3)
}
