package board

import (
	"math/rand/v2"
	"testing"
)

// TestSliderAttacksMatchNaiveRayWalk checks the magic-indexed lookup
// against the same ray-tracing function used to build the tables, on
// random occupancies, for every square — the attack-symmetry property
// spec.md §8 calls for (two independent implementations agreeing).
func TestSliderAttacksMatchNaiveRayWalk(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for sq := Square(0); sq < 64; sq++ {
		for trial := 0; trial < 200; trial++ {
			occ := Bitboard(rng.Uint64())

			gotRook := RookAttacks(sq, occ)
			wantRook := rayAttacks(sq, occ, rookDirections)
			if gotRook != wantRook {
				t.Fatalf("rook attacks from %s mismatch for occ %016x: got %016x want %016x", sq, uint64(occ), uint64(gotRook), uint64(wantRook))
			}

			gotBishop := BishopAttacks(sq, occ)
			wantBishop := rayAttacks(sq, occ, bishopDirections)
			if gotBishop != wantBishop {
				t.Fatalf("bishop attacks from %s mismatch for occ %016x: got %016x want %016x", sq, uint64(occ), uint64(gotBishop), uint64(wantBishop))
			}
		}
	}
}

func TestRookMaskExcludesEdgesAndOrigin(t *testing.T) {
	mask := rookMask(ParseSquareMust("a1"))
	if mask.IsSet(ParseSquareMust("a1")) {
		t.Fatalf("rook mask should not include the origin square")
	}
	if mask.IsSet(ParseSquareMust("a8")) || mask.IsSet(ParseSquareMust("h1")) {
		t.Fatalf("rook mask should exclude the far edge squares")
	}
	if !mask.IsSet(ParseSquareMust("a4")) || !mask.IsSet(ParseSquareMust("d1")) {
		t.Fatalf("rook mask should include interior same-file/same-rank squares")
	}
}

func TestBishopMaskExcludesAllEdges(t *testing.T) {
	mask := bishopMask(ParseSquareMust("d4"))
	for _, edge := range []string{"a1", "a7", "g1", "h8"} {
		if mask.IsSet(ParseSquareMust(edge)) {
			t.Fatalf("bishop mask for d4 should exclude edge square %s", edge)
		}
	}
	if !mask.IsSet(ParseSquareMust("c3")) {
		t.Fatalf("bishop mask for d4 should include interior diagonal square c3")
	}
}

func TestSubsetsEnumeratesEveryBitCombination(t *testing.T) {
	mask := SquareBB(ParseSquareMust("a1")) | SquareBB(ParseSquareMust("b1")) | SquareBB(ParseSquareMust("c1"))
	seen := map[Bitboard]bool{}
	subsets(mask, func(sub Bitboard) {
		if sub&^mask != 0 {
			t.Fatalf("subset %016x is not contained in mask %016x", uint64(sub), uint64(mask))
		}
		seen[sub] = true
	})
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct subsets of a 3-bit mask, got %d", len(seen))
	}
}
