package chess

import "golang.org/x/exp/slices"

// Perft counts the leaf positions of the legal move tree at exactly
// depth plies. It exists as a correctness oracle for the move
// generator and the make/unmake engine, not as a game feature.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	c := perftCtx{bufs: make([][]Move, depth)}
	return c.count(b, depth)
}

// perftCtx recycles one move buffer per tree level so a full run does
// not allocate beyond the first visit of each depth.
type perftCtx struct {
	bufs [][]Move
}

func (c *perftCtx) count(b *Board, depth int) uint64 {
	moves := b.GenerateMoves(c.bufs[depth-1])
	c.bufs[depth-1] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := b.DoMove(m)
		nodes += c.count(b, depth-1)
		b.UndoMove(m, u)
	}
	return nodes
}

// PerftEntry is one root move with its subtree leaf count.
type PerftEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide returns the per-root-move breakdown of Perft(depth),
// sorted by move string, together with the total. This is the usual
// shape for diffing a bad perft against a reference implementation.
func (b *Board) PerftDivide(depth int) ([]PerftEntry, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	moves := b.LegalMoves()
	entries := make([]PerftEntry, 0, len(moves))
	var total uint64
	c := perftCtx{bufs: make([][]Move, depth)}
	for _, m := range moves {
		u := b.DoMove(m)
		nodes := uint64(1)
		if depth > 1 {
			nodes = c.count(b, depth-1)
		}
		b.UndoMove(m, u)
		entries = append(entries, PerftEntry{Move: m, Nodes: nodes})
		total += nodes
	}
	slices.SortFunc(entries, func(x, y PerftEntry) bool {
		return x.Move.String() < y.Move.String()
	})
	return entries, total
}
