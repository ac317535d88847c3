package chess

import "fmt"

// Move packs a move into 16 bits: from in bits 0-5, to in bits 6-11,
// promotion piece type in bits 12-14. Castling is encoded as the king
// move: king to its destination square on standard boards, king to the
// rook's start square on Chess960 boards. The all-zero value is the
// null move.
type Move uint16

// NullMove is the reserved "pass" move, written "0000".
const NullMove Move = 0

// NewMove creates a move from origin and destination.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a pawn promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type, NoPieceType for
// non-promotion moves.
func (m Move) Promotion() PieceType {
	return PieceType((m >> 12) & 7)
}

// IsPromotion reports whether the move carries a promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPieceType
}

// String returns the move in coordinate notation ("e2e4", "a7a8q"),
// "0000" for the null move.
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p.IsValid() {
		s += p.String()
	}
	return s
}

// MoveFromString parses coordinate notation, the inverse of
// Move.String. Malformed input yields an error, never a panic.
func MoveFromString(s string) (Move, error) {
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("invalid move %q", s)
	}
	from := SquareFromString(s[:2])
	to := SquareFromString(s[2:4])
	if from == NoSquare || to == NoSquare || from == to {
		return NullMove, fmt.Errorf("invalid move %q", s)
	}
	if len(s) == 4 {
		return NewMove(from, to), nil
	}
	promo := PieceTypeFromChar(s[4])
	if promo < Knight || promo > Queen {
		return NullMove, fmt.Errorf("invalid promotion in move %q", s)
	}
	return NewPromotion(from, to, promo), nil
}
