package board

import "testing"

func TestPinDetection(t *testing.T) {
	// White king e1, white bishop d2 pinned along the a5-e1 diagonal by the
	// black bishop on a5.
	pos, err := ParseFEN("4k3/8/8/b7/8/8/3B4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if !pos.isPinned(D2) {
		t.Error("expected bishop on d2 to be pinned")
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.From() == D2 {
			d := DirectionBetween(m.From(), E1)
			dt := DirectionBetween(m.To(), E1)
			if dt != d && dt != -d {
				t.Errorf("pinned bishop move %v leaves the pin line", m)
			}
		}
	}
}

func TestCheckMaskRestrictsNonKingMoves(t *testing.T) {
	// White king e1 in check from a rook on e8 along the open e-file; only
	// moves landing on the e-file between the rook and king (or capturing
	// the rook) resolve it.
	pos, err := ParseFEN("k3r3/8/8/8/8/8/3N4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if !pos.InCheck {
		t.Fatal("expected white to be in check")
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E1 {
			continue // king moves are governed by the attack map, not CheckMask
		}
		if !pos.CheckMask.IsSet(m.To()) {
			t.Errorf("move %v does not resolve the check", m)
		}
	}
}

func TestKingCannotMoveAlongXRayThroughItself(t *testing.T) {
	// White king e1, black rook e8 on an open file: e1 must not step to a
	// square still swept by the rook once the king's own bit is removed
	// from occupancy (e.g. staying on the e-file is illegal).
	pos, err := ParseFEN("k3r3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.To().File() == E1.File() {
			t.Errorf("king move %v stays on the attacked e-file", m)
		}
	}
}

func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	// Black king a4, white pawn d4, black pawn e4, white rook h4: capturing
	// en passant (exd3) removes both the e4 and d4 pawns from rank 4 at
	// once, exposing the black king to the rook.
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal", m)
		}
	}
}
