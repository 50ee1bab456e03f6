package board

import "testing"

// TestSBAMGMatchesRayCasting cross-checks the subtract-trick sliding
// generator against the plain ray-casting reference kept in sliding.go,
// across a fixed set of squares (center, edge, corner) and occupancies
// (empty, full, and scattered blockers on both sides of the slider).
func TestSBAMGMatchesRayCasting(t *testing.T) {
	squares := []Square{A1, H1, A8, H8, D4, E4, D5, B2, G7}

	occupancies := []Bitboard{
		Empty,
		Universe,
		SquareBB(D1) | SquareBB(D8) | SquareBB(A4) | SquareBB(H4),
		SquareBB(C3) | SquareBB(E5) | SquareBB(B6) | SquareBB(F2),
		Rank2 | Rank7,
		FileA | FileH,
		SquareBB(D4).North().North() | SquareBB(D4).South().South(),
	}

	for _, sq := range squares {
		for _, occ := range occupancies {
			if got, want := bishopAttacksSBAMG(sq, occ), bishopAttacksSlow(sq, occ); got != want {
				t.Errorf("bishop attacks from %s, occ=%016x: SBAMG=%016x slow=%016x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := rookAttacksSBAMG(sq, occ), rookAttacksSlow(sq, occ); got != want {
				t.Errorf("rook attacks from %s, occ=%016x: SBAMG=%016x slow=%016x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

func TestQueenAttacksSBAMGIsUnionOfRookAndBishop(t *testing.T) {
	occ := SquareBB(D1) | SquareBB(A4) | SquareBB(G4) | SquareBB(D7)
	sq := D4
	want := bishopAttacksSBAMG(sq, occ) | rookAttacksSBAMG(sq, occ)
	if got := queenAttacksSBAMG(sq, occ); got != want {
		t.Errorf("queen attacks = %016x, want %016x", uint64(got), uint64(want))
	}
}

func TestSlidingAttacksStopAtFirstBlockerAndIncludeIt(t *testing.T) {
	// Rook on d4 with a blocker on d6: attacks along the d-file upward must
	// include d5 and d6 but not d7/d8.
	occ := SquareBB(D6)
	attacks := rookAttacksSBAMG(D4, occ)
	for _, sq := range []Square{D5, D6} {
		if !attacks.IsSet(sq) {
			t.Errorf("expected %s to be attacked", sq)
		}
	}
	for _, sq := range []Square{D7, D8} {
		if attacks.IsSet(sq) {
			t.Errorf("expected %s to be beyond the blocker and not attacked", sq)
		}
	}
}
