package chess

import "strings"

// Color represents the side a piece belongs to.
type Color uint8

const (
	White Color = 0
	Black Color = 1
	// NoColor is the color of NoPiece and of nothing else.
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c <= Black
}

// ColorFromChar converts 'w'/'b' to a Color, NoColor on anything else.
func ColorFromChar(ch byte) Color {
	switch ch {
	case 'w':
		return White
	case 'b':
		return Black
	}
	return NoColor
}

// String returns "w", "b" or "-".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// PieceType is a colorless representation of a chess piece used for
// table lookups.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const pieceTypeChars = "pnbrqk"

// IsValid reports whether the piece type is one of the six real types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// PieceTypeFromChar converts a lowercase piece letter (pnbrqk) to a
// PieceType, NoPieceType on anything else.
func PieceTypeFromChar(ch byte) PieceType {
	idx := strings.IndexByte(pieceTypeChars, ch)
	if idx < 0 {
		return NoPieceType
	}
	return Pawn + PieceType(idx)
}

// Char returns the lowercase letter for the piece type, '?' if invalid.
func (pt PieceType) Char() byte {
	if !pt.IsValid() {
		return '?'
	}
	return pieceTypeChars[pt-1]
}

// String returns the lowercase letter for the piece type.
func (pt PieceType) String() string {
	return string(pt.Char())
}

// Piece is a colored piece packed into one byte:
//   - piece & 7 gives the type in [1..6]
//   - piece & 8 != 0 indicates Black
//
// The zero value NoPiece marks an empty square.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | blackBit
	BlackKnight Piece = Piece(Knight) | blackBit
	BlackBishop Piece = Piece(Bishop) | blackBit
	BlackRook   Piece = Piece(Rook) | blackBit
	BlackQueen  Piece = Piece(Queen) | blackBit
	BlackKing   Piece = Piece(King) | blackBit

	blackBit Piece = 8
)

// MakePiece combines a side with a colorless type. Invalid inputs yield
// NoPiece.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || !pt.IsValid() {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type of the piece, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p & 7)
}

// Color returns the side that owns the piece, NoColor for NoPiece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p >> 3)
}

// IsValid reports whether p is one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p.Type().IsValid() && p <= BlackKing
}

// PieceFromChar converts a FEN piece letter to a Piece: uppercase is
// White, lowercase is Black, anything else is NoPiece.
func PieceFromChar(ch byte) Piece {
	if ch >= 'A' && ch <= 'Z' {
		return MakePiece(White, PieceTypeFromChar(ch + 'a' - 'A'))
	}
	return MakePiece(Black, PieceTypeFromChar(ch))
}

// Char returns the FEN letter for the piece (uppercase for White),
// '?' if invalid.
func (p Piece) Char() byte {
	if !p.IsValid() {
		return '?'
	}
	ch := p.Type().Char()
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// String returns the FEN letter for the piece.
func (p Piece) String() string {
	return string(p.Char())
}
