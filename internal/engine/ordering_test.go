package engine

import (
	"testing"

	"github.com/mpetrov/chesscore/internal/board"
)

func TestScoreMovesRanksTTMoveFirst(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := pos.GenerateLegalMoves()

	ttMove := board.NoMove
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).From() == board.G1 {
			ttMove = moves.Get(i)
			break
		}
	}
	if ttMove == board.NoMove {
		t.Fatal("expected a knight move from g1 to exist at the starting position")
	}

	scores := ScoreMoves(pos, moves, ttMove)

	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i) == ttMove {
			continue
		}
		if scores[i] >= ttMoveScore {
			t.Errorf("non-TT move %s scored %d, should be below ttMoveScore", moves.Get(i), scores[i])
		}
	}

	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i) == ttMove && scores[i] != ttMoveScore {
			t.Errorf("TT move scored %d, want %d", scores[i], ttMoveScore)
		}
	}
}

func TestScoreMovesRanksCapturesAboveQuietMoves(t *testing.T) {
	// White pawn on e5 can capture a black knight on d6, or push to e6 quietly.
	pos, err := board.ParseFEN("4k3/8/3n4/4P3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := pos.GenerateLegalMoves()
	scores := ScoreMoves(pos, moves, board.NoMove)

	var captureScore, quietScore int
	var sawCapture, sawQuiet bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == board.E5 && m.To() == board.D6 {
			captureScore = scores[i]
			sawCapture = true
		}
		if m.From() == board.E5 && m.To() == board.E6 {
			quietScore = scores[i]
			sawQuiet = true
		}
	}
	if !sawCapture || !sawQuiet {
		t.Fatal("expected both exd6 and e6 to be legal moves")
	}
	if captureScore <= quietScore {
		t.Errorf("capture scored %d, quiet push scored %d; capture should rank higher", captureScore, quietScore)
	}
}

func TestMvvLvaPrefersLowValueAttacker(t *testing.T) {
	pawnTakesQueen := mvvLvaScore(board.Queen, board.Pawn)
	queenTakesQueen := mvvLvaScore(board.Queen, board.Queen)

	if pawnTakesQueen <= queenTakesQueen {
		t.Errorf("pawn-takes-queen (%d) should outscore queen-takes-queen (%d)", pawnTakesQueen, queenTakesQueen)
	}
}

func TestScoreMovesPenalizesMovingIntoPawnAttack(t *testing.T) {
	// Black pawn on d5 attacks c4 and e4. A white knight on d2 can hop to
	// the attacked square c4 or to the safe square b3.
	pos, err := board.ParseFEN("4k3/8/8/3p4/8/8/3N4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := pos.GenerateLegalMoves()
	scores := ScoreMoves(pos, moves, board.NoMove)

	var intoAttack, safe int
	var sawIntoAttack, sawSafe bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == board.D2 && m.To() == board.B3 {
			safe = scores[i]
			sawSafe = true
		}
		if m.From() == board.D2 && m.To() == board.C4 {
			intoAttack = scores[i]
			sawIntoAttack = true
		}
	}
	if !sawIntoAttack || !sawSafe {
		t.Fatal("expected both Nb3 and Nc4 to be legal moves")
	}
	if intoAttack >= safe {
		t.Errorf("Nc4 (into pawn attack, scored %d) should rank below Nb3 (scored %d)", intoAttack, safe)
	}
}

func TestPickMoveSelectsHighestRemainingScore(t *testing.T) {
	ml := &board.MoveList{}
	m1 := board.NewMove(board.A2, board.A3)
	m2 := board.NewMove(board.B2, board.B4)
	m3 := board.NewMove(board.C2, board.C4)
	ml.Add(m1)
	ml.Add(m2)
	ml.Add(m3)

	scores := []int{10, 30, 20}
	pickMove(ml, scores, 0)

	if ml.Get(0) != m2 {
		t.Errorf("pickMove should move the highest-scoring move to index 0, got %s", ml.Get(0))
	}
	if scores[0] != 30 {
		t.Errorf("scores should be swapped alongside moves, got %v", scores)
	}
}
