package chess

import (
	"encoding/binary"
	"fmt"
)

// Compact binary board codec. A position packs into at most 26 bytes:
// the occupancy bitboard (8 bytes, little endian), one nibble per
// occupied square in ascending square order holding the packed piece
// value, one metadata byte (castle rights, side to move, Chess960
// flag) and one byte with the two castle rook files. The two spare
// nibble values 7 and 15 mark a white or black pawn that can be
// captured en passant, which is how the en-passant square survives the
// round trip without its own field.

const (
	metaSideBit  = 1 << 4
	meta960Bit   = 1 << 5
	epNibbleMask = 7
)

// Compress encodes the position. The halfmove clock and fullmove
// number are not stored; a decompressed board reproduces the exact
// four-field FEN of the original.
func (b *Board) Compress() []byte {
	buf := make([]byte, 8, 26)
	binary.LittleEndian.PutUint64(buf, uint64(b.occupied))

	epVictim := NoSquare
	if b.epSquare != NoSquare {
		epVictim = b.epSquare.Add(PawnPush(b.sideToMove.Other()))
	}

	var cur byte
	half := false
	for occ := b.occupied; occ != 0; {
		sq := occ.PopLSB()
		n := byte(b.squares[sq])
		if sq == epVictim {
			n = byte(b.squares[sq].Color())<<3 | epNibbleMask
		}
		if !half {
			cur = n
			half = true
		} else {
			buf = append(buf, cur|n<<4)
			half = false
		}
	}
	if half {
		buf = append(buf, cur)
	}

	meta := byte(b.castleRights)
	if b.sideToMove == Black {
		meta |= metaSideBit
	}
	if b.chess960 {
		meta |= meta960Bit
	}
	buf = append(buf, meta)
	buf = append(buf, byte(b.castleFiles[queensideFile]|b.castleFiles[kingsideFile]<<4))
	return buf
}

// Decompress rebuilds a board from Compress output. The length must
// match the occupancy's piece count exactly.
func Decompress(data []byte) (*Board, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("chess: compressed board of %d bytes is too short", len(data))
	}
	occ := SquareSet(binary.LittleEndian.Uint64(data[:8]))
	want := 8 + (occ.PopCount()+1)/2 + 2
	if len(data) != want {
		return nil, fmt.Errorf("chess: compressed board is %d bytes, want %d", len(data), want)
	}

	b := &Board{
		kingSq:         [2]Square{NoSquare, NoSquare},
		epSquare:       NoSquare,
		fullmoveNumber: 1,
	}

	nibbles := data[8 : len(data)-2]
	epVictim := NoSquare
	i := 0
	for s := occ; s != 0; i++ {
		sq := s.PopLSB()
		nb := nibbles[i/2]
		if i%2 == 1 {
			nb >>= 4
		} else {
			nb &= 0x0f
		}
		if nb&epNibbleMask == epNibbleMask {
			epVictim = sq
			nb = nb&8 | byte(Pawn)
		}
		p := Piece(nb)
		if !p.IsValid() {
			return nil, fmt.Errorf("chess: bad piece code %d in compressed board", nb)
		}
		b.putPiece(p, sq)
	}

	if b.kingSq[White] == NoSquare || b.kingSq[Black] == NoSquare {
		return nil, fmt.Errorf("chess: compressed board is missing a king")
	}

	meta := data[len(data)-2]
	b.castleRights = CastleRights(meta) & AllCastleRights
	if meta&metaSideBit != 0 {
		b.sideToMove = Black
	}
	b.chess960 = meta&meta960Bit != 0
	fileByte := data[len(data)-1]
	b.castleFiles[queensideFile] = int(fileByte & 0x0f)
	b.castleFiles[kingsideFile] = int(fileByte >> 4)

	if epVictim != NoSquare && b.squares[epVictim].Color() == b.sideToMove.Other() {
		target := epVictim.Add(PawnPush(b.sideToMove))
		if target.IsValid() && b.squares[target] == NoPiece && b.epCapturable(target, b.sideToMove) {
			b.epSquare = target
		}
	}

	b.key = b.computeKey()
	b.refresh()
	return b, nil
}
