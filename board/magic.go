package board

// Magic-bitboard sliding attacks for rooks and bishops: per-square relevant
// blocker mask, a discovered magic multiplier, a shift width, and a dense
// lookup table indexed by (occupancy & mask) * magic >> shift.

// magicEntry holds everything needed to query one square's slider attacks.
type magicEntry struct {
	Mask  Bitboard
	Magic uint64
	Shift uint
	Table []Bitboard
}

func (e *magicEntry) attacks(occupied Bitboard) Bitboard {
	idx := ((occupied & e.Mask) * Bitboard(e.Magic)) >> e.Shift
	return e.Table[idx]
}

var rookMagics [64]magicEntry
var bishopMagics [64]magicEntry

// rookDirections and bishopDirections are the per-piece ray directions as
// (file delta, rank delta) unit steps.
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rayAttacks walks from sq in each given direction, setting bits until it
// runs off the board or hits an occupied square (inclusive, since an
// occupied square is a capturable blocker).
func rayAttacks(sq Square, occupied Bitboard, directions [4][2]int) Bitboard {
	file, rank := sq.File(), sq.Rank()
	var attacks Bitboard
	for _, d := range directions {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			s := NewSquare(f, r)
			attacks |= SquareBB(s)
			if occupied.IsSet(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// rookMask returns the relevant-blocker mask for a rook on sq: same file and
// rank, excluding the board edges (a blocker there can't be jumped anyway)
// and sq itself.
func rookMask(sq Square) Bitboard {
	file, rank := sq.File(), sq.Rank()
	var mask Bitboard
	for f := 1; f < 7; f++ {
		if f != file {
			mask |= SquareBB(NewSquare(f, rank))
		}
	}
	for r := 1; r < 7; r++ {
		if r != rank {
			mask |= SquareBB(NewSquare(file, r))
		}
	}
	return mask
}

// bishopMask returns the relevant-blocker mask for a bishop on sq: the
// diagonal rays, excluding all edge squares.
func bishopMask(sq Square) Bitboard {
	edges := RankMask[0] | RankMask[7] | FileMask[0] | FileMask[7]
	return rayAttacks(sq, Empty, bishopDirections) &^ edges
}

// subsets enumerates, via the Carry-Rippler idiom, every subset of mask
// (including the empty subset), calling f once per subset.
func subsets(mask Bitboard, f func(Bitboard)) {
	sub := Bitboard(0)
	for {
		f(sub)
		sub = (sub - mask) & mask
		if sub == 0 {
			break
		}
	}
}

// magicPRNG is a small xorshift64* generator, used to draw the sparse
// candidate multipliers magic discovery searches over.
type magicPRNG struct {
	state uint64
}

func newMagicPRNG(seed uint64) *magicPRNG {
	return &magicPRNG{state: seed}
}

func (p *magicPRNG) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// sparseCandidate draws a magic-number candidate biased toward few set
// bits, per spec: the AND of three independent random draws.
func (p *magicPRNG) sparseCandidate() uint64 {
	return p.next() & p.next() & p.next()
}

// findMagic searches for a magic multiplier for sq given its relevant
// blocker mask and a ray-attack function, filling in a magicEntry on
// success. It has no error return and no attempt limit: it keeps drawing
// candidates until one works, which the space of sparse 64-bit candidates
// reliably provides for standard rook and bishop masks.
func findMagic(sq Square, mask Bitboard, directions [4][2]int, rng *magicPRNG) magicEntry {
	bits := mask.PopCount()
	shift := uint(64 - bits)
	size := 1 << bits

	table := make([]Bitboard, size)
	filled := make([]bool, size)

	for attempt := 0; ; attempt++ {
		candidate := rng.sparseCandidate()

		for i := range filled {
			filled[i] = false
		}

		ok := true
		subsets(mask, func(occ Bitboard) {
			if !ok {
				return
			}
			idx := (occ * Bitboard(candidate)) >> shift
			attack := rayAttacks(sq, occ, directions)
			if !filled[idx] {
				filled[idx] = true
				table[idx] = attack
			} else if table[idx] != attack {
				ok = false
			}
		})

		if ok {
			return magicEntry{Mask: mask, Magic: candidate, Shift: shift, Table: table}
		}
	}
}

// initMagics runs the randomized magic search for every square's rook and
// bishop tables. Called once from Init.
func initMagics(rng *magicPRNG) {
	for sq := Square(0); sq < 64; sq++ {
		rookMagics[sq] = findMagic(sq, rookMask(sq), rookDirections, rng)
		bishopMagics[sq] = findMagic(sq, bishopMask(sq), bishopDirections, rng)
	}
}

// RookAttacks returns rook attacks from sq given the board occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rookMagics[sq].attacks(occupied)
}

// BishopAttacks returns bishop attacks from sq given the board occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopMagics[sq].attacks(occupied)
}

// QueenAttacks returns queen attacks from sq given the board occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}
