package chess

// Undo is the snapshot that lets UndoMove reverse one DoMove exactly,
// including the Zobrist key and the cached attack state, without any
// recomputation.
type Undo struct {
	move       Move
	piece      Piece
	captured   Piece
	capturedSq Square
	castle     bool
	kingTo     Square
	rookFrom   Square
	rookTo     Square
	rights     CastleRights
	epSquare   Square
	halfmove   int
	fullmove   int
	lastMove   Move
	checkers   SquareSet
	pinned     SquareSet
	key        uint64
}

// snapshot records the restorable game state before a move.
func (b *Board) snapshot(m Move) Undo {
	return Undo{
		move:       m,
		captured:   NoPiece,
		capturedSq: NoSquare,
		rights:     b.castleRights,
		epSquare:   b.epSquare,
		halfmove:   b.halfmoveClock,
		fullmove:   b.fullmoveNumber,
		lastMove:   b.lastMove,
		checkers:   b.checkers,
		pinned:     b.pinned,
		key:        b.key,
	}
}

// isCastleMove reports whether m is a castling move in this position.
// On a standard board that is a two-file king move; on a Chess960 board
// the king "captures" its own rook.
func (b *Board) isCastleMove(m Move) bool {
	p := b.squares[m.From()]
	if p.Type() != King {
		return false
	}
	if b.chess960 {
		return b.squares[m.To()] == MakePiece(p.Color(), Rook)
	}
	d := m.From().File() - m.To().File()
	return d == 2 || d == -2
}

// rookRightLost returns the castling right that disappears when c's
// rook on sq moves away or is captured there.
func (b *Board) rookRightLost(c Color, sq Square) CastleRights {
	backRank := 0
	if c == Black {
		backRank = 7
	}
	if sq.Rank() != backRank {
		return 0
	}
	switch sq.File() {
	case b.castleFiles[kingsideFile]:
		return castleRight(c, true)
	case b.castleFiles[queensideFile]:
		return castleRight(c, false)
	}
	return 0
}

// DoMove applies the legal move m and returns the snapshot that
// UndoMove needs to take it back. The move kind (capture, promotion, en
// passant, castle) is classified from the board, so m carries only its
// squares and an optional promotion piece. Applying a move that is not
// legal in this position leaves the board undefined.
func (b *Board) DoMove(m Move) Undo {
	u := b.snapshot(m)

	from, to := m.From(), m.To()
	p := b.squares[from]
	us := b.sideToMove
	them := us.Other()
	u.piece = p

	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassant[b.epSquare.File()]
		b.epSquare = NoSquare
	}
	b.halfmoveClock++

	newRights := b.castleRights
	if b.isCastleMove(m) {
		kingside := to.File() == 6
		if b.chess960 {
			kingside = to.File() == b.castleFiles[kingsideFile]
		}
		backRank := 0
		if us == Black {
			backRank = 7
		}
		var rookFrom Square
		if kingside {
			rookFrom = NewSquare(b.castleFiles[kingsideFile], backRank)
			u.kingTo, u.rookTo = NewSquare(6, backRank), NewSquare(5, backRank)
		} else {
			rookFrom = NewSquare(b.castleFiles[queensideFile], backRank)
			u.kingTo, u.rookTo = NewSquare(2, backRank), NewSquare(3, backRank)
		}
		u.castle = true
		u.rookFrom = rookFrom

		// Remove both pieces before placing either, the four squares may
		// overlap on a Chess960 board.
		b.removePiece(from)
		rook := b.removePiece(rookFrom)
		b.putPiece(p, u.kingTo)
		b.putPiece(rook, u.rookTo)

		newRights &^= castleRight(us, true) | castleRight(us, false)
	} else {
		if cap := b.squares[to]; cap != NoPiece {
			u.captured, u.capturedSq = cap, to
			b.removePiece(to)
			b.halfmoveClock = 0
			if cap.Type() == Rook {
				newRights &^= b.rookRightLost(them, to)
			}
		} else if p.Type() == Pawn && to == u.epSquare {
			capSq := to.Add(PawnPush(them))
			u.captured, u.capturedSq = b.squares[capSq], capSq
			b.removePiece(capSq)
		}

		if promo := m.Promotion(); promo != NoPieceType {
			b.removePiece(from)
			b.putPiece(MakePiece(us, promo), to)
		} else {
			b.movePiece(from, to)
		}

		switch p.Type() {
		case Pawn:
			b.halfmoveClock = 0
			if d := from - to; d == 16 || d == -16 {
				cand := from.Add(PawnPush(us))
				if b.epCapturable(cand, them) {
					b.epSquare = cand
					b.key ^= zobristEnPassant[cand.File()]
				}
			}
		case King:
			newRights &^= castleRight(us, true) | castleRight(us, false)
		case Rook:
			newRights &^= b.rookRightLost(us, from)
		}
	}

	if newRights != b.castleRights {
		b.key ^= zobristCastle[b.castleRights] ^ zobristCastle[newRights]
		b.castleRights = newRights
	}

	b.sideToMove = them
	b.key ^= zobristSide
	if us == Black {
		b.fullmoveNumber++
	}
	b.lastMove = m
	b.refresh()
	return u
}

// UndoMove reverses a DoMove of m, restoring the board bit for bit from
// the snapshot u.
func (b *Board) UndoMove(m Move, u Undo) {
	b.sideToMove = b.sideToMove.Other()

	if u.castle {
		king := b.removePiece(u.kingTo)
		rook := b.removePiece(u.rookTo)
		b.putPiece(king, m.From())
		b.putPiece(rook, u.rookFrom)
	} else if m != NullMove {
		if m.Promotion() != NoPieceType {
			b.removePiece(m.To())
			b.putPiece(u.piece, m.From())
		} else {
			b.movePiece(m.To(), m.From())
		}
		if u.captured != NoPiece {
			b.putPiece(u.captured, u.capturedSq)
		}
	}

	b.castleRights = u.rights
	b.epSquare = u.epSquare
	b.halfmoveClock = u.halfmove
	b.fullmoveNumber = u.fullmove
	b.lastMove = u.lastMove
	b.checkers = u.checkers
	b.pinned = u.pinned
	b.key = u.key
}

// DoMoveNew applies m to a copy of the board and returns the copy.
func (b *Board) DoMoveNew(m Move) *Board {
	nb := b.Copy()
	nb.DoMove(m)
	return nb
}

// DoNullMove passes the turn without moving: the en-passant square is
// cleared, the clocks advance and the side flips. Not legal while in
// check; callers such as null-move search must test InCheck first.
func (b *Board) DoNullMove() Undo {
	u := b.snapshot(NullMove)

	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassant[b.epSquare.File()]
		b.epSquare = NoSquare
	}
	b.halfmoveClock++
	if b.sideToMove == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = b.sideToMove.Other()
	b.key ^= zobristSide
	b.lastMove = NullMove
	b.refresh()
	return u
}

// UndoNullMove reverses a DoNullMove.
func (b *Board) UndoNullMove(u Undo) {
	b.UndoMove(NullMove, u)
}

// IsCapture reports whether m takes a piece in this position, counting
// en passant. Castling is never a capture even when encoded as king
// takes rook.
func (b *Board) IsCapture(m Move) bool {
	if b.isCastleMove(m) {
		return false
	}
	if b.squares[m.To()] != NoPiece {
		return true
	}
	return b.squares[m.From()].Type() == Pawn && m.To() == b.epSquare
}

// Push validates m, applies it and records it on the internal game
// stack for Pop and repetition detection. It returns false and leaves
// the board untouched when m is not legal.
func (b *Board) Push(m Move) bool {
	if !b.IsLegal(m) {
		return false
	}
	u := b.DoMove(m)
	b.history = append(b.history, historyEntry{move: m, undo: u})
	return true
}

// Pop takes back the most recent Push and returns the move, NullMove
// when the stack is empty.
func (b *Board) Pop() Move {
	n := len(b.history)
	if n == 0 {
		return NullMove
	}
	e := b.history[n-1]
	b.history = b.history[:n-1]
	b.UndoMove(e.move, e.undo)
	return e.move
}
