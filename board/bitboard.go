package board

import (
	"fmt"
	"math/bits"
)

// Bitboard is a 64-bit set of squares; bit k set means square k is occupied
// by whatever this bitboard represents.
type Bitboard uint64

// Empty and Universe are the zero and all-ones bitboards.
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// FileMask and RankMask are built at init time from NewSquare rather than
// written out as hex literals, so they stay correct under the square
// numbering's reversed file order without hand-deriving mirrored masks.
var (
	FileMask [8]Bitboard // FileMask[0]=file a .. FileMask[7]=file h
	RankMask [8]Bitboard // RankMask[0]=rank1 .. RankMask[7]=rank8
)

func init() {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := NewSquare(file, rank)
			FileMask[file] |= SquareBB(sq)
			RankMask[rank] |= SquareBB(sq)
		}
	}
}

// SquareBB returns the single-bit bitboard for a square.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set returns b with sq's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear returns b with sq's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet reports whether sq's bit is set in b.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set square, or NoSquare if b is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty reports whether no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// String renders the bitboard as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// Squares returns the set squares in ascending index order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
