package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// ParseFEN builds a board from a Forsyth-Edwards notation string. The
// four position fields are required, the halfmove clock and fullmove
// number are optional and default to 0 and 1. Castling rights accept
// the classical KQkq letters as well as Shredder-FEN file letters for
// Chess960; rights whose king or rook is not in place are dropped.
// File-letter rights mark the board as Chess960, as does any castling
// geometry the classical letters cannot describe, so the rights field
// survives a FEN round trip unchanged. The en-passant field is kept
// only when an enemy pawn can actually capture there, so equal
// positions always parse to equal Zobrist keys.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("chess: fen needs 4 to 6 fields, got %d", len(fields))
	}

	b := &Board{
		kingSq:         [2]Square{NoSquare, NoSquare},
		castleFiles:    [2]int{7, 0},
		epSquare:       NoSquare,
		fullmoveNumber: 1,
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chess: fen placement needs 8 ranks, got %d", len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := PieceFromChar(ch)
			if p == NoPiece {
				return nil, fmt.Errorf("chess: bad piece %q in fen", ch)
			}
			if file > 7 {
				return nil, fmt.Errorf("chess: rank %d of fen placement overflows", rank+1)
			}
			b.putPiece(p, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("chess: rank %d of fen placement has %d files", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("chess: bad side to move %q", fields[1])
	}

	shredder, err := b.parseCastleRights(fields[2])
	if err != nil {
		return nil, err
	}
	b.chess960 = shredder || b.detectChess960()

	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq == NoSquare {
			return nil, fmt.Errorf("chess: bad en-passant square %q", fields[3])
		}
		wantRank := 2
		if b.sideToMove == White {
			wantRank = 5
		}
		them := b.sideToMove.Other()
		victim := sq.Add(PawnPush(them))
		if sq.Rank() == wantRank &&
			b.squares[sq] == NoPiece &&
			b.squares[victim] == MakePiece(them, Pawn) &&
			b.epCapturable(sq, b.sideToMove) {
			b.epSquare = sq
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("chess: bad halfmove clock %q", fields[4])
		}
		b.halfmoveClock = n
	}
	if len(fields) == 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("chess: bad fullmove number %q", fields[5])
		}
		b.fullmoveNumber = n
	}

	b.key = b.computeKey()
	b.refresh()
	return b, nil
}

// parseCastleRights resolves one rights field into flags and rook start
// files, reporting whether any Shredder file letter was used. K and Q
// pick the outermost rook of the wing, file letters name the rook
// directly. White and Black must agree on the rook file of a wing
// because the board stores one file per wing.
func (b *Board) parseCastleRights(s string) (bool, error) {
	if s == "-" {
		return false, nil
	}
	shredder := false
	files := [2][2]int{{-1, -1}, {-1, -1}}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		var c Color
		var f int
		switch {
		case ch == 'K':
			c, f = White, b.outermostRookFile(White, true)
		case ch == 'Q':
			c, f = White, b.outermostRookFile(White, false)
		case ch == 'k':
			c, f = Black, b.outermostRookFile(Black, true)
		case ch == 'q':
			c, f = Black, b.outermostRookFile(Black, false)
		case ch >= 'A' && ch <= 'H':
			c, f = White, int(ch-'A')
			shredder = true
		case ch >= 'a' && ch <= 'h':
			c, f = Black, int(ch-'a')
			shredder = true
		default:
			return false, fmt.Errorf("chess: bad castling rights %q", s)
		}
		if f < 0 {
			continue
		}
		backRank := 0
		if c == Black {
			backRank = 7
		}
		ksq := b.kingSq[c]
		if ksq == NoSquare || ksq.Rank() != backRank || ksq.File() == f {
			continue
		}
		if b.squares[NewSquare(f, backRank)] != MakePiece(c, Rook) {
			continue
		}
		wing := queensideFile
		if f > ksq.File() {
			wing = kingsideFile
		}
		if files[c][wing] >= 0 && files[c][wing] != f {
			return false, fmt.Errorf("chess: conflicting castling rights %q", s)
		}
		files[c][wing] = f
	}

	for wing := 0; wing < 2; wing++ {
		wf, bf := files[White][wing], files[Black][wing]
		if wf >= 0 && bf >= 0 && wf != bf {
			return false, fmt.Errorf("chess: conflicting castling rook files in %q", s)
		}
		f := wf
		if f < 0 {
			f = bf
		}
		if f < 0 {
			continue
		}
		b.castleFiles[wing] = f
		if wf >= 0 {
			b.castleRights |= castleRight(White, wing == kingsideFile)
		}
		if bf >= 0 {
			b.castleRights |= castleRight(Black, wing == kingsideFile)
		}
	}
	return shredder, nil
}

// outermostRookFile returns the file of c's rook nearest the edge on
// the given wing of its back rank, -1 if there is none. This is the
// rook a classical K or Q right refers to.
func (b *Board) outermostRookFile(c Color, kingside bool) int {
	ksq := b.kingSq[c]
	if ksq == NoSquare {
		return -1
	}
	backRank := 0
	if c == Black {
		backRank = 7
	}
	if ksq.Rank() != backRank {
		return -1
	}
	rooks := b.PieceBB(c, Rook)
	if kingside {
		for f := 7; f > ksq.File(); f-- {
			if rooks.IsSet(NewSquare(f, backRank)) {
				return f
			}
		}
	} else {
		for f := 0; f < ksq.File(); f++ {
			if rooks.IsSet(NewSquare(f, backRank)) {
				return f
			}
		}
	}
	return -1
}

// detectChess960 reports whether the castling setup needs Chess960
// conventions: any live right with the king or a castling rook off its
// classical start square.
func (b *Board) detectChess960() bool {
	if b.castleRights == 0 {
		return false
	}
	if b.castleFiles != [2]int{7, 0} {
		return true
	}
	for c := White; c <= Black; c++ {
		if b.castleRights&(castleRight(c, true)|castleRight(c, false)) != 0 &&
			b.kingSq[c].File() != 4 {
			return true
		}
	}
	return false
}

// FEN returns the position in Forsyth-Edwards notation: the four
// position-defining fields, without the move counters. Chess960 boards
// export Shredder style file-letter castling rights.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castleRightsString())

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}
	return sb.String()
}

// FENWithCounters returns the six-field FEN including the halfmove
// clock and fullmove number, for tools that require them.
func (b *Board) FENWithCounters() string {
	return fmt.Sprintf("%s %d %d", b.FEN(), b.halfmoveClock, b.fullmoveNumber)
}

func (b *Board) castleRightsString() string {
	if b.castleRights == 0 {
		return "-"
	}
	letters := [4]byte{'K', 'Q', 'k', 'q'}
	if b.chess960 {
		kf := byte('A' + b.castleFiles[kingsideFile])
		qf := byte('A' + b.castleFiles[queensideFile])
		letters = [4]byte{kf, qf, kf | 0x20, qf | 0x20}
	}
	var sb strings.Builder
	if b.castleRights&WhiteKingside != 0 {
		sb.WriteByte(letters[0])
	}
	if b.castleRights&WhiteQueenside != 0 {
		sb.WriteByte(letters[1])
	}
	if b.castleRights&BlackKingside != 0 {
		sb.WriteByte(letters[2])
	}
	if b.castleRights&BlackQueenside != 0 {
		sb.WriteByte(letters[3])
	}
	return sb.String()
}
