package chess

// seeValue holds the exchange values in pawn units, indexed by
// PieceType. The king only has to outweigh any possible sequence.
var seeValue = [7]int{0, 1, 3, 3, 5, 9, 200}

// SEE statically evaluates the exchange sequence that m starts on its
// destination square and returns the expected material balance in pawn
// units from the mover's point of view. Each side always recaptures
// with its cheapest attacker, sliders hidden behind a capturer join in
// as they are revealed, and either side may stop early rather than
// lose material. A non-capture scores 0 unless the moved piece is
// simply lost on the destination.
func (b *Board) SEE(m Move) int {
	if m == NullMove || b.isCastleMove(m) {
		return 0
	}
	from, to := m.From(), m.To()
	mover := b.squares[from]
	us := mover.Color()

	occ := b.occupied
	captured := b.squares[to].Type()
	if captured == NoPieceType && mover.Type() == Pawn && to == b.epSquare {
		occ = occ.Clear(to.Add(PawnPush(us.Other())))
		captured = Pawn
	}

	var gain [32]int
	d := 0
	gain[0] = seeValue[captured]

	attacker := mover.Type()
	occ = occ.Clear(from)
	attackers := b.attackersTo(to, occ) & occ

	bishopsQueens := b.byType[Bishop-1] | b.byType[Queen-1]
	rooksQueens := b.byType[Rook-1] | b.byType[Queen-1]

	stm := us.Other()
	for {
		stmAttackers := attackers & b.byColor[stm]
		if stmAttackers == 0 {
			break
		}
		var pt PieceType
		var bb SquareSet
		for pt = Pawn; pt <= King; pt++ {
			if bb = stmAttackers & b.byType[pt-1]; bb != 0 {
				break
			}
		}
		// The king may only join when nothing could recapture it.
		if pt == King && attackers&b.byColor[stm.Other()] != 0 {
			break
		}

		d++
		gain[d] = seeValue[attacker] - gain[d-1]
		if max(-gain[d-1], gain[d]) < 0 {
			break
		}

		attacker = pt
		occ = occ.Clear(bb.LSB())
		if pt == Pawn || pt == Bishop || pt == Queen {
			attackers |= BishopAttacks(to, occ) & bishopsQueens
		}
		if pt == Rook || pt == Queen {
			attackers |= RookAttacks(to, occ) & rooksQueens
		}
		attackers &= occ
		stm = stm.Other()
	}

	for ; d > 0; d-- {
		gain[d-1] = min(-gain[d], gain[d-1])
	}
	return gain[0]
}
