package board

import "testing"

func TestToSANBasicMoves(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()

	var e4Move Move
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E2 && m.To() == E4 {
			e4Move = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected e2e4 to be a legal opening move")
	}
	if got := e4Move.ToSAN(pos); got != "e4" {
		t.Errorf("ToSAN(e2e4) = %q, want %q", got, "e4")
	}
}

func TestToSANDisambiguation(t *testing.T) {
	// Two white rooks on an open rank, both able to reach d4: requires file
	// disambiguation.
	pos, err := ParseFEN("4k3/8/8/8/R6R/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewMove(A4, D4)
	if got := m.ToSAN(pos); got != "Rad4" {
		t.Errorf("ToSAN(Ra4-d4) = %q, want %q", got, "Rad4")
	}
}

func TestToSANCheckAndMateMarkers(t *testing.T) {
	pos, err := ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewMove(A1, A8)
	if got := m.ToSAN(pos); got != "Ra8#" {
		t.Errorf("ToSAN(back rank mate) = %q, want %q", got, "Ra8#")
	}
}

func TestToSANCastlingAndPromotion(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := NewCastling(E1, G1).ToSAN(pos); got != "O-O" {
		t.Errorf("ToSAN(castle) = %q, want %q", got, "O-O")
	}

	pos, err = ParseFEN("8/P3k3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewPromotion(A7, A8, Queen)
	if got := m.ToSAN(pos); got != "a8=Q" {
		t.Errorf("ToSAN(promotion) = %q, want %q", got, "a8=Q")
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		san := m.ToSAN(pos)
		parsed, err := ParseSAN(san, pos)
		if err != nil {
			t.Fatalf("ParseSAN(%q) failed: %v", san, err)
		}
		if parsed != m {
			t.Errorf("ParseSAN(%q) = %v, want %v", san, parsed, m)
		}
	}
}

func TestParseSANRejectsUnmatchedMove(t *testing.T) {
	pos := NewPosition()
	if _, err := ParseSAN("Qxh8", pos); err == nil {
		t.Error("expected an error for a SAN string matching no legal move")
	}
}
