package chess

// Zobrist keys for incremental position hashing, generated once from a
// fixed-seed PRNG so keys are reproducible across runs.
var (
	zobristPiece     [15][64]uint64 // indexed by packed Piece and square
	zobristEnPassant [8]uint64      // one per file, active only while an ep capture is possible
	zobristCastle    [16]uint64     // all castle-rights combinations
	zobristSide      uint64         // XORed in when Black is to move
)

// xorshift64* with a fixed seed.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func init() {
	rng := prng{state: 0x6AF5E2C0D1B89F37}

	for _, p := range []Piece{
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
	} {
		for sq := A1; sq <= H8; sq++ {
			zobristPiece[p][sq] = rng.next()
		}
	}
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}
	for i := 0; i < 16; i++ {
		zobristCastle[i] = rng.next()
	}
	zobristSide = rng.next()
}

// computeKey recomputes the Zobrist key from scratch. The incrementally
// maintained key must always equal this.
func (b *Board) computeKey() uint64 {
	var key uint64
	for sq := A1; sq <= H8; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	key ^= zobristCastle[b.castleRights]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}
