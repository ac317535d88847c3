package chess

// IsCheckmate reports whether the side to move is in check with no
// legal move.
func (b *Board) IsCheckmate() bool {
	return b.checkers != 0 && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal move while
// not in check.
func (b *Board) IsStalemate() bool {
	return b.checkers == 0 && !b.HasLegalMoves()
}

// IsRule50Draw reports whether the halfmove clock has reached 100
// plies. A mate delivered on the hundredth ply still wins.
func (b *Board) IsRule50Draw() bool {
	return b.halfmoveClock >= 100 && !b.IsCheckmate()
}

// darkSquares masks a1 and every other square of its color.
const darkSquares = SquareSet(0xAA55AA55AA55AA55)

// IsMaterialDraw reports whether neither side can possibly deliver
// mate: only the kings, one minor piece in total, or nothing but
// bishops that all stand on squares of one color.
func (b *Board) IsMaterialDraw() bool {
	if b.byType[Pawn-1]|b.byType[Rook-1]|b.byType[Queen-1] != 0 {
		return false
	}
	knights := b.byType[Knight-1]
	bishops := b.byType[Bishop-1]
	if (knights | bishops).PopCount() <= 1 {
		return true
	}
	if knights == 0 {
		if bishops&darkSquares == 0 || bishops&^darkSquares == 0 {
			return true
		}
	}
	return false
}

// IsRepetitionDraw reports whether the current position occurred at
// least twice before on the game stack maintained by Push. Only
// positions since the last irreversible move can match, so the scan is
// bounded by the halfmove clock.
func (b *Board) IsRepetitionDraw() bool {
	limit := len(b.history) - b.halfmoveClock
	if limit < 0 {
		limit = 0
	}
	reps := 0
	for i := len(b.history) - 1; i >= limit; i-- {
		if b.history[i].undo.key == b.key {
			reps++
			if reps >= 2 {
				return true
			}
		}
	}
	return false
}

// IsDraw reports whether the position is drawn by stalemate,
// insufficient material, the fifty-move rule or threefold repetition.
func (b *Board) IsDraw() bool {
	return b.IsStalemate() || b.IsMaterialDraw() || b.IsRule50Draw() || b.IsRepetitionDraw()
}

// IsTerminal reports whether the game is over, by checkmate or any
// kind of draw.
func (b *Board) IsTerminal() bool {
	return b.IsCheckmate() || b.IsDraw()
}
