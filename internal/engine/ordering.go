package engine

import (
	"github.com/mpetrov/chesscore/internal/board"
)

// ordering.go scores and orders moves for the search: the TT's stored best
// move first, then MVV/LVA captures, promotion bonus, and a penalty for
// moving into the enemy pawn-attack map (spec.md §4.8 point 4). Grounded on
// hailam-chessplay/internal/engine/ordering.go's mvvLva table and
// TTMoveScore constant; the teacher's killer-move slots, history heuristic,
// counter-move table, and capture-history tables are dropped since spec.md
// §4.8 names exactly these four ordering signals, not a full killer-move
// heuristic stack.

const (
	ttMoveScore       = 1_000_000
	captureBase       = 100_000
	promotionBase     = 50_000
	pawnAttackPenalty = 60
)

// mvvLvaScore scores a capture as victim value * 10 - attacker value, per
// spec.md §4.8's "captured_value×10 − mover_value" formula. PieceValue
// already carries the centipawn weights the formula needs, so this is
// computed directly rather than via a precomputed [victim][attacker] table.
func mvvLvaScore(victim, attacker board.PieceKind) int {
	return board.PieceValue[victim]*10 - board.PieceValue[attacker]
}

// enemyPawnAttackMap returns the union of every attack square of every pawn
// belonging to color c.
func enemyPawnAttackMap(pos *board.Position, c board.Color) board.Bitboard {
	var attacks board.Bitboard
	for _, sq := range pos.PieceList[c][board.Pawn] {
		attacks |= board.PawnAttacks(sq, c)
	}
	return attacks
}

// ScoreMoves assigns an ordering score to every move in ml. ttMove, if not
// board.NoMove, is ranked first regardless of its own shape.
func ScoreMoves(pos *board.Position, ml *board.MoveList, ttMove board.Move) []int {
	them := pos.SideToMove.Other()
	enemyPawnAttacks := enemyPawnAttackMap(pos, them)

	scores := make([]int, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		scores[i] = scoreMove(pos, ml.Get(i), ttMove, enemyPawnAttacks)
	}
	return scores
}

func scoreMove(pos *board.Position, m board.Move, ttMove board.Move, enemyPawnAttacks board.Bitboard) int {
	if m == ttMove {
		return ttMoveScore
	}

	score := 0

	if m.IsCapture(pos) {
		attacker := pos.PieceAt(m.From()).Kind()
		var victim board.PieceKind
		if m.IsEnPassant() {
			victim = board.Pawn
		} else {
			victim = pos.PieceAt(m.To()).Kind()
		}
		score += captureBase + mvvLvaScore(victim, attacker)
	}

	if m.IsPromotion() {
		score += promotionBase + board.PieceValue[m.Promotion()]
	}

	if enemyPawnAttacks.IsSet(m.To()) {
		score -= pawnAttackPenalty
	}

	return score
}

// pickMove moves the highest-scoring move at or after index to index,
// enabling lazy selection-sort style ordering (only as much sorting as the
// search actually consumes).
func pickMove(ml *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < ml.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		ml.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}
