package chess

// genMode selects which slice of the legal move set to produce.
type genMode uint8

const (
	genAll genMode = iota
	genCaptures
	genQuiets
)

// moveSink accumulates generated moves. The same generator serves three
// callers: materializing a move list, counting matches, and existence
// testing with an early stop.
type moveSink struct {
	dst         []Move
	materialize bool
	count       int
	limit       int // stop once count reaches limit, 0 means no limit
}

func (s *moveSink) add(m Move) {
	if s.materialize {
		s.dst = append(s.dst, m)
	}
	s.count++
}

func (s *moveSink) done() bool {
	return s.limit > 0 && s.count >= s.limit
}

// GenerateMoves appends every legal move for the side to move to dst
// (reusing its backing array from index 0) and returns the result.
// Pass a recycled buffer to avoid allocation.
func (b *Board) GenerateMoves(dst []Move) []Move {
	s := moveSink{dst: dst[:0], materialize: true}
	b.generate(&s, genAll)
	return s.dst
}

// GenerateCaptures is GenerateMoves restricted to captures, including
// en passant and capturing promotions.
func (b *Board) GenerateCaptures(dst []Move) []Move {
	s := moveSink{dst: dst[:0], materialize: true}
	b.generate(&s, genCaptures)
	return s.dst
}

// GenerateQuiets is GenerateMoves restricted to non-captures, including
// quiet promotions and castling.
func (b *Board) GenerateQuiets(dst []Move) []Move {
	s := moveSink{dst: dst[:0], materialize: true}
	b.generate(&s, genQuiets)
	return s.dst
}

// LegalMoves returns a freshly allocated list of all legal moves.
func (b *Board) LegalMoves() []Move {
	return b.GenerateMoves(make([]Move, 0, 64))
}

// CountMoves returns the number of legal moves without materializing
// them.
func (b *Board) CountMoves() int {
	var s moveSink
	b.generate(&s, genAll)
	return s.count
}

// HasLegalMoves reports whether the side to move has any legal move,
// stopping at the first one found.
func (b *Board) HasLegalMoves() bool {
	s := moveSink{limit: 1}
	b.generate(&s, genAll)
	return s.count > 0
}

// IsLegal reports whether m is one of the legal moves in this position.
func (b *Board) IsLegal(m Move) bool {
	for _, lm := range b.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// generate is the single-pass legal move generator. Non-king moves are
// restricted by the pin lines and, in check, by the capture-or-block
// mask; king moves are vetted with the king removed from the occupancy;
// en passant goes through a full occupancy simulation.
func (b *Board) generate(s *moveSink, mode genMode) {
	us := b.sideToMove
	ksq := b.kingSq[us]
	if ksq == NoSquare {
		return
	}

	doubleCheck := b.checkers.More()

	// Squares non-king moves may go to: anywhere when not in check,
	// capture or block when in single check, nowhere in double check.
	allowed := ^SquareSet(0)
	if b.checkers != 0 {
		allowed = Between(ksq, b.checkers.LSB()) | b.checkers
	}

	var targets SquareSet
	switch mode {
	case genAll:
		targets = ^b.byColor[us]
	case genCaptures:
		targets = b.byColor[us.Other()]
	case genQuiets:
		targets = ^b.occupied
	}

	if !doubleCheck {
		b.pawnMoves(s, mode, allowed)
		if s.done() {
			return
		}
		b.knightMoves(s, targets&allowed)
		if s.done() {
			return
		}
		b.sliderMoves(s, targets&allowed)
		if s.done() {
			return
		}
		if mode != genCaptures && b.checkers == 0 {
			b.castleMoves(s)
			if s.done() {
				return
			}
		}
	}
	b.kingMoves(s, targets)
}

func (b *Board) pawnMoves(s *moveSink, mode genMode, allowed SquareSet) {
	us := b.sideToMove
	them := us.Other()
	up := PawnPush(us)
	ksq := b.kingSq[us]
	enemies := b.byColor[them]

	for pp := b.PieceBB(us, Pawn); pp != 0 && !s.done(); {
		from := pp.PopLSB()
		pinMask := ^SquareSet(0)
		if b.pinned.IsSet(from) {
			pinMask = lineBB[ksq][from]
		}

		if mode != genQuiets {
			for caps := pawnAttacks[us][from] & enemies & allowed & pinMask; caps != 0; {
				b.emitPawn(s, from, caps.PopLSB(), us)
			}
		}

		if mode != genCaptures {
			one := from.Add(up)
			if !b.occupied.IsSet(one) {
				if (allowed & pinMask).IsSet(one) {
					b.emitPawn(s, from, one, us)
				}
				if from.RelativeRank(us) == 1 {
					two := one.Add(up)
					if !b.occupied.IsSet(two) && (allowed&pinMask).IsSet(two) {
						s.add(NewMove(from, two))
					}
				}
			}
		}
	}

	// En passant resolves its own legality by simulation: the capture
	// empties two squares and fills a third, which no pin or check mask
	// models exactly.
	if mode != genQuiets && b.epSquare != NoSquare && !s.done() {
		to := b.epSquare
		for froms := pawnAttacks[them][to] & b.PieceBB(us, Pawn); froms != 0; {
			from := froms.PopLSB()
			if b.epLegal(from, to, us) {
				s.add(NewMove(from, to))
			}
		}
	}
}

// emitPawn adds a pawn move, fanning out the four promotions on the
// last rank.
func (b *Board) emitPawn(s *moveSink, from, to Square, us Color) {
	if to.RelativeRank(us) == 7 {
		s.add(NewPromotion(from, to, Queen))
		s.add(NewPromotion(from, to, Rook))
		s.add(NewPromotion(from, to, Bishop))
		s.add(NewPromotion(from, to, Knight))
		return
	}
	s.add(NewMove(from, to))
}

// epLegal verifies an en-passant capture against the occupancy with the
// moving pawn and the captured pawn removed and the destination filled.
// This covers discovered checks through either vacated square and the
// capture of a checking pawn.
func (b *Board) epLegal(from, to Square, us Color) bool {
	them := us.Other()
	ksq := b.kingSq[us]
	capSq := to.Add(PawnPush(them))
	occ := b.occupied.Clear(from).Clear(capSq).Set(to)

	if RookAttacks(ksq, occ)&(b.PieceBB(them, Rook)|b.PieceBB(them, Queen)) != 0 {
		return false
	}
	if BishopAttacks(ksq, occ)&(b.PieceBB(them, Bishop)|b.PieceBB(them, Queen)) != 0 {
		return false
	}
	if knightAttacks[ksq]&b.PieceBB(them, Knight) != 0 {
		return false
	}
	if pawnAttacks[us][ksq]&(b.PieceBB(them, Pawn)&^SquareBB(capSq)) != 0 {
		return false
	}
	return true
}

func (b *Board) knightMoves(s *moveSink, mask SquareSet) {
	us := b.sideToMove
	// A pinned knight can never stay on its pin line.
	for nn := b.PieceBB(us, Knight) &^ b.pinned; nn != 0 && !s.done(); {
		from := nn.PopLSB()
		for dests := knightAttacks[from] & mask; dests != 0; {
			s.add(NewMove(from, dests.PopLSB()))
		}
	}
}

func (b *Board) sliderMoves(s *moveSink, mask SquareSet) {
	us := b.sideToMove
	ksq := b.kingSq[us]
	occ := b.occupied

	for _, pt := range [3]PieceType{Bishop, Rook, Queen} {
		for pieces := b.PieceBB(us, pt); pieces != 0 && !s.done(); {
			from := pieces.PopLSB()
			dests := PieceAttacks(pt, from, occ) & mask
			if b.pinned.IsSet(from) {
				dests &= lineBB[ksq][from]
			}
			for dests != 0 {
				s.add(NewMove(from, dests.PopLSB()))
			}
		}
	}
}

func (b *Board) kingMoves(s *moveSink, mask SquareSet) {
	us := b.sideToMove
	them := us.Other()
	ksq := b.kingSq[us]
	occWithoutKing := b.occupied.Clear(ksq)

	for dests := kingAttacks[ksq] & mask; dests != 0 && !s.done(); {
		to := dests.PopLSB()
		if b.attackersByColor(to, them, occWithoutKing) == 0 {
			s.add(NewMove(ksq, to))
		}
	}
}

func (b *Board) castleMoves(s *moveSink) {
	us := b.sideToMove
	if b.CanCastle(us, true) {
		b.tryCastle(s, us, true)
	}
	if s.done() {
		return
	}
	if b.CanCastle(us, false) {
		b.tryCastle(s, us, false)
	}
}

// tryCastle emits one castling move if it is legal: the right is held
// (checked by the caller), every square on the king's path and the
// rook's path is empty apart from the two castling pieces, no square
// the king crosses or lands on is attacked, and the final placement
// leaves the king out of check even after the rook vacates its file.
func (b *Board) tryCastle(s *moveSink, us Color, kingside bool) {
	them := us.Other()
	ksq := b.kingSq[us]
	backRank := 0
	if us == Black {
		backRank = 7
	}
	rookFrom := NewSquare(b.CastleFile(kingside), backRank)
	if b.squares[rookFrom] != MakePiece(us, Rook) {
		return
	}
	var kingTo, rookTo Square
	if kingside {
		kingTo, rookTo = NewSquare(6, backRank), NewSquare(5, backRank)
	} else {
		kingTo, rookTo = NewSquare(2, backRank), NewSquare(3, backRank)
	}

	kingRook := SquareBB(ksq) | SquareBB(rookFrom)
	path := (Between(ksq, kingTo) | SquareBB(kingTo) |
		Between(rookFrom, rookTo) | SquareBB(rookTo)) &^ kingRook
	if path&b.occupied != 0 {
		return
	}

	for kp := Between(ksq, kingTo) | SquareBB(kingTo); kp != 0; {
		if b.IsSquareAttacked(kp.PopLSB(), them) {
			return
		}
	}

	occAfter := (b.occupied &^ kingRook) | SquareBB(kingTo) | SquareBB(rookTo)
	if b.attackersByColor(kingTo, them, occAfter) != 0 {
		return
	}

	if b.chess960 {
		s.add(NewMove(ksq, rookFrom))
	} else {
		s.add(NewMove(ksq, kingTo))
	}
}
