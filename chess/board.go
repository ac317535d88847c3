package chess

import "strings"

// CastleRights is a bitmask of the four castling permissions.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastleRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castleRight returns the single flag for a color and wing.
func castleRight(c Color, kingside bool) CastleRights {
	if kingside {
		return WhiteKingside << (2 * c)
	}
	return WhiteQueenside << (2 * c)
}

// Indices into castleFiles.
const (
	kingsideFile  = 0
	queensideFile = 1
)

// Board is the mutable position aggregate. It keeps a per-square piece
// array and per-color/per-type bitboards that always agree, plus the
// game-state scalars and an incrementally maintained Zobrist key.
// A Board is not safe for concurrent mutation; share copies instead.
type Board struct {
	squares  [64]Piece
	byColor  [2]SquareSet
	byType   [6]SquareSet
	occupied SquareSet
	kingSq   [2]Square

	sideToMove   Color
	castleRights CastleRights
	// Rook start files for castling: index 0 kingside, 1 queenside.
	// H and A on a standard board, anything on a Chess960 one.
	castleFiles [2]int
	chess960    bool

	// En-passant target square. Set only when an enemy pawn can actually
	// capture there; cleared otherwise so equal positions hash equally.
	epSquare Square

	halfmoveClock  int
	fullmoveNumber int
	lastMove       Move

	// Attack state for the side to move, recomputed after every mutation.
	checkers SquareSet
	pinned   SquareSet

	key uint64

	history []historyEntry
}

type historyEntry struct {
	move Move
	undo Undo
}

// NewBoard returns a board set up with the standard starting position.
func NewBoard() *Board {
	b, _ := ParseFEN(FENStartPos)
	return b
}

// EmptyBoard returns a board with no pieces, White to move and no
// castling rights, ready for incremental PutPiece construction.
func EmptyBoard() *Board {
	b := &Board{
		kingSq:         [2]Square{NoSquare, NoSquare},
		castleFiles:    [2]int{7, 0},
		epSquare:       NoSquare,
		fullmoveNumber: 1,
	}
	b.key = b.computeKey()
	return b
}

// Copy returns an independent copy of the board. The game history stack
// is not carried over.
func (b *Board) Copy() *Board {
	nb := *b
	nb.history = nil
	return &nb
}

// Primitive mutators. Everything that changes piece placement goes
// through these three, which keep the square array, both bitboard
// tiers, the occupancy and king caches, and the Zobrist key in step.

// putPiece places p on an empty square.
func (b *Board) putPiece(p Piece, sq Square) {
	bb := SquareBB(sq)
	b.squares[sq] = p
	b.byColor[p.Color()] |= bb
	b.byType[p.Type()-1] |= bb
	b.occupied |= bb
	if p.Type() == King {
		b.kingSq[p.Color()] = sq
	}
	b.key ^= zobristPiece[p][sq]
}

// removePiece clears sq and returns the piece that was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	bb := SquareBB(sq)
	b.squares[sq] = NoPiece
	b.byColor[p.Color()] &^= bb
	b.byType[p.Type()-1] &^= bb
	b.occupied &^= bb
	if p.Type() == King {
		b.kingSq[p.Color()] = NoSquare
	}
	b.key ^= zobristPiece[p][sq]
	return p
}

// movePiece relocates the piece on from to the empty square to.
func (b *Board) movePiece(from, to Square) {
	p := b.squares[from]
	fromTo := SquareBB(from) | SquareBB(to)
	b.squares[from] = NoPiece
	b.squares[to] = p
	b.byColor[p.Color()] ^= fromTo
	b.byType[p.Type()-1] ^= fromTo
	b.occupied ^= fromTo
	if p.Type() == King {
		b.kingSq[p.Color()] = to
	}
	b.key ^= zobristPiece[p][from] ^ zobristPiece[p][to]
}

// PutPiece places a piece during board construction, replacing whatever
// occupied the square. Invalid pieces or squares are ignored.
func (b *Board) PutPiece(p Piece, sq Square) {
	if !p.IsValid() || !sq.IsValid() {
		return
	}
	if b.squares[sq] != NoPiece {
		b.removePiece(sq)
	}
	b.putPiece(p, sq)
	b.refresh()
}

// ClearSquare removes the piece on sq, if any.
func (b *Board) ClearSquare(sq Square) {
	if !sq.IsValid() || b.squares[sq] == NoPiece {
		return
	}
	b.removePiece(sq)
	b.refresh()
}

// SetSideToMove updates the side to play during board construction.
// Normal move making toggles the side automatically.
func (b *Board) SetSideToMove(c Color) {
	if !c.IsValid() || b.sideToMove == c {
		return
	}
	b.sideToMove = c
	b.key ^= zobristSide
	b.refresh()
}

// SetCastleRights replaces the castling rights during construction.
func (b *Board) SetCastleRights(cr CastleRights) {
	cr &= AllCastleRights
	b.key ^= zobristCastle[b.castleRights] ^ zobristCastle[cr]
	b.castleRights = cr
}

// Accessors.

// PieceAt returns the piece on sq, NoPiece for an empty square.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.key }

// EnPassantSquare returns the en-passant target square, NoSquare when no
// en-passant capture is possible.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// HalfmoveClock returns the half-move counter for the fifty-move rule.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full-move counter (incremented after
// Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// LastMove returns the most recently applied move, NullMove if none.
func (b *Board) LastMove() Move { return b.lastMove }

// Occupied returns the set of all occupied squares.
func (b *Board) Occupied() SquareSet { return b.occupied }

// ColorBB returns the set of squares occupied by the given side.
func (b *Board) ColorBB(c Color) SquareSet { return b.byColor[c] }

// PieceBB returns the set of squares holding the given side's pieces of
// the given type.
func (b *Board) PieceBB(c Color, pt PieceType) SquareSet {
	return b.byColor[c] & b.byType[pt-1]
}

// KingSquare returns the square of the given side's king, NoSquare on a
// kingless construction board.
func (b *Board) KingSquare(c Color) Square { return b.kingSq[c] }

// Checkers returns the set of enemy pieces giving check to the side to
// move.
func (b *Board) Checkers() SquareSet { return b.checkers }

// Pinned returns the side to move's pieces that are pinned to their
// king.
func (b *Board) Pinned() SquareSet { return b.pinned }

// CanCastle reports whether the given side still holds the castling
// right for the given wing.
func (b *Board) CanCastle(c Color, kingside bool) bool {
	return b.castleRights&castleRight(c, kingside) != 0
}

// CastleFile returns the rook start file for the given wing (0..7).
func (b *Board) CastleFile(kingside bool) int {
	if kingside {
		return b.castleFiles[kingsideFile]
	}
	return b.castleFiles[queensideFile]
}

// IsChess960 reports whether the position uses Chess960 castling
// conventions (file-letter FEN rights, king-takes-rook castle moves).
func (b *Board) IsChess960() bool { return b.chess960 }

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.checkers != 0 }

// Attack queries.

// attackersTo returns all pieces of both colors attacking sq under the
// given occupancy.
func (b *Board) attackersTo(sq Square, occ SquareSet) SquareSet {
	return (pawnAttacks[Black][sq] & b.PieceBB(White, Pawn)) |
		(pawnAttacks[White][sq] & b.PieceBB(Black, Pawn)) |
		(knightAttacks[sq] & b.byType[Knight-1]) |
		(kingAttacks[sq] & b.byType[King-1]) |
		(BishopAttacks(sq, occ) & (b.byType[Bishop-1] | b.byType[Queen-1])) |
		(RookAttacks(sq, occ) & (b.byType[Rook-1] | b.byType[Queen-1]))
}

// attackersByColor returns the pieces of color c attacking sq under the
// given occupancy.
func (b *Board) attackersByColor(sq Square, c Color, occ SquareSet) SquareSet {
	return (pawnAttacks[c.Other()][sq] & b.PieceBB(c, Pawn)) |
		(knightAttacks[sq] & b.PieceBB(c, Knight)) |
		(kingAttacks[sq] & b.PieceBB(c, King)) |
		(BishopAttacks(sq, occ) & (b.PieceBB(c, Bishop) | b.PieceBB(c, Queen))) |
		(RookAttacks(sq, occ) & (b.PieceBB(c, Rook) | b.PieceBB(c, Queen)))
}

// IsSquareAttacked reports whether sq is attacked by any piece of the
// given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.attackersByColor(sq, by, b.occupied) != 0
}

// refresh recomputes the checker and pin sets for the side to move.
// Called after every complete mutation. A board without the mover's king
// (mid construction) gets empty sets.
func (b *Board) refresh() {
	b.checkers = 0
	b.pinned = 0
	us := b.sideToMove
	ksq := b.kingSq[us]
	if ksq == NoSquare {
		return
	}
	them := us.Other()
	b.checkers = b.attackersByColor(ksq, them, b.occupied) &^ b.PieceBB(them, King)

	snipers := (RookAttacks(ksq, 0) & (b.PieceBB(them, Rook) | b.PieceBB(them, Queen))) |
		(BishopAttacks(ksq, 0) & (b.PieceBB(them, Bishop) | b.PieceBB(them, Queen)))
	for snipers != 0 {
		sniper := snipers.PopLSB()
		blockers := Between(ksq, sniper) & b.occupied
		if blockers != 0 && !blockers.More() && blockers&b.byColor[us] != 0 {
			b.pinned |= blockers
		}
	}
}

// epCapturable reports whether an enemy pawn could capture on the
// en-passant target sq if it were set with the given side to move.
func (b *Board) epCapturable(sq Square, mover Color) bool {
	return pawnAttacks[mover.Other()][sq]&b.PieceBB(mover, Pawn) != 0
}

// Validate cross-checks the redundant board state: square array against
// bitboards, occupancy and king caches, the en-passant invariant, and
// the incremental key against a from-scratch recomputation.
func (b *Board) Validate() bool {
	var occ SquareSet
	var byColor [2]SquareSet
	var byType [6]SquareSet
	kingSq := [2]Square{NoSquare, NoSquare}
	for sq := A1; sq <= H8; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if !p.IsValid() {
			return false
		}
		bb := SquareBB(sq)
		occ |= bb
		byColor[p.Color()] |= bb
		byType[p.Type()-1] |= bb
		if p.Type() == King {
			kingSq[p.Color()] = sq
		}
	}
	if occ != b.occupied || byColor != b.byColor || byType != b.byType {
		return false
	}
	if kingSq != b.kingSq {
		return false
	}
	if b.epSquare != NoSquare && !b.epCapturable(b.epSquare, b.sideToMove) {
		return false
	}
	return b.key == b.computeKey()
}

// String returns a diagram of the board with the side to move.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(p.Char())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" to move\n")
	return sb.String()
}
