package board

import "testing"

// Grounded on hailam-chessplay/internal/board/checkmate_test.go, adapted to
// the renamed IsInCheck method (pin/check state is now refreshed by
// ParseFEN/MakeMove automatically, so there is no UpdateCheckers call).

func TestCheckmate(t *testing.T) {
	// Back-rank mate: Black king on h8 trapped by its own pawns, rook on a8
	// delivering check along the back rank.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if !pos.IsInCheck() {
		t.Fatal("expected black to be in check")
	}
	if pos.HasLegalMoves() {
		t.Error("expected no legal moves")
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate")
	}
	if pos.IsStalemate() {
		t.Error("checkmate must not also report stalemate")
	}
}

func TestNotCheckmate(t *testing.T) {
	// King can capture the checking rook: not checkmate.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if !pos.IsInCheck() {
		t.Fatal("expected black to be in check")
	}
	if !pos.HasLegalMoves() {
		t.Error("expected Kxg8 to be available")
	}
	if pos.IsCheckmate() {
		t.Error("expected not checkmate")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move and is not in check.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if pos.IsInCheck() {
		t.Fatal("expected black not to be in check")
	}
	if pos.HasLegalMoves() {
		t.Error("expected no legal moves")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate must not also report checkmate")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king on e8 is hit simultaneously by the rook on e1 (open e-file)
	// and the knight on d6; only a king move can answer a double check.
	pos, err := ParseFEN("4k3/8/3N4/8/8/8/8/K3R3 b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	if !pos.InDoubleCheck {
		t.Fatal("expected a double check")
	}

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		t.Fatal("expected at least one legal king move")
	}
	ksq := pos.KingSquare[Black]
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.From() != ksq {
			t.Errorf("move %v does not move the king, illegal under double check", m)
		}
	}
}
