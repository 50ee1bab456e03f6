package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1bnr/pppkpppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR w KQ - 2 2",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip mismatch: parsed %q, re-rendered %q", fen, got)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"rnbqkbnP/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should have failed", fen)
		}
	}
}

func TestParseFENDefaultsHalfAndFullMove(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/8/8/8/K6k w - -")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if pos.HalfMoveClock != 0 {
		t.Errorf("expected halfmove clock default 0, got %d", pos.HalfMoveClock)
	}
	if pos.FullMoveNumber != 1 {
		t.Errorf("expected fullmove default 1, got %d", pos.FullMoveNumber)
	}
}

func TestComputeHashMatchesIncrementalUpdate(t *testing.T) {
	pos := NewPosition()
	fromScratch := ComputeHash(pos)
	if pos.Hash != fromScratch {
		t.Fatalf("ParseFEN hash %016x does not match ComputeHash %016x", pos.Hash, fromScratch)
	}

	moves := pos.GenerateLegalMoves()
	m := moves.Get(0)
	pos.MakeMove(m)

	if got, want := pos.Hash, ComputeHash(pos); got != want {
		t.Errorf("after MakeMove, incremental hash %016x does not match ComputeHash %016x", got, want)
	}
}

func TestDifferentPositionsHashDifferently(t *testing.T) {
	a, _ := ParseFEN(StartFEN)
	b, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if a.Hash == b.Hash {
		t.Error("positions differing only by side to move must hash differently")
	}
}
