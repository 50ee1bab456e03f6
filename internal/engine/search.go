package engine

import (
	"sync/atomic"
	"time"

	"github.com/mpetrov/chesscore/internal/board"
)

// search.go implements iterative-deepening negamax with alpha-beta pruning
// and a quiescence extension, per spec.md §4.8. Grounded on
// hailam-chessplay/internal/engine/search.go's Searcher/PVTable/negamax/
// quiescence shape, with three deliberate departures:
//
//   - No Lazy-SMP workers, no SharedHistory, no NNUE/tablebase probes: the
//     teacher's engine.go wires several search backends together; spec.md §6
//     names a single Engine::search(pos, time_budget) entry point.
//   - Quiescence takes an explicit plies_left budget (spec.md §4.8 point 2)
//     instead of the teacher's shared MaxPly/maxQuiescencePly stack-depth
//     cap, and returns alpha rather than a fresh evaluate() call once the
//     budget is spent.
//   - Draws short-circuit through the RepetitionTable this package adds
//     (repetition.go), filling in what the teacher's isDraw explicitly left
//     to "the game-level repetition check".

// Search constants. MateScore/MaxPly are also referenced by
// transposition.go's AdjustScoreFromTT/AdjustScoreToTT.
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// quiescencePlies is the starting plies_left budget for quiescence search,
// per spec.md §4.8's "quiescence(alpha, beta, 4)" call from negamax.
const quiescencePlies = 4

// PVTable stores the principal variation discovered at each ply.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

// Searcher runs one iterative-deepening search session against a single
// Position, using caller-supplied transposition and repetition tables.
type Searcher struct {
	pos *board.Position
	tt  *TranspositionTable
	rep *RepetitionTable

	nodes    uint64
	stopFlag atomic.Bool
	deadline time.Time

	// incomplete marks that the deadline passed partway through the root
	// move loop of the current iteration, so Search must discard its
	// result and keep the previous iteration's best move (spec.md §5).
	incomplete bool

	pv        PVTable
	undoStack [MaxPly]board.UndoInfo
}

// NewSearcher creates a searcher sharing tt and rep with its owning Engine.
func NewSearcher(tt *TranspositionTable, rep *RepetitionTable) *Searcher {
	return &Searcher{tt: tt, rep: rep}
}

// Stop signals the search to finish: Search discards the result of the
// iteration in progress once it returns and starts no further iteration.
// negamax itself does not read the flag.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Reset clears per-search state, keeping the transposition table warm
// across searches (the table itself is cleared independently via Clear).
func (s *Searcher) Reset() {
	s.stopFlag.Store(false)
	s.nodes = 0
}

// Nodes returns the number of nodes visited in the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs iterative deepening from minDepth until deadline elapses,
// returning the best move found by the last fully completed iteration.
// A partially searched iteration's result is discarded, per spec.md §5.
func (s *Searcher) Search(pos *board.Position, minDepth int, deadline time.Time) (board.Move, int) {
	s.pos = pos.Copy()
	s.deadline = deadline
	s.Reset()

	var bestMove board.Move
	var bestScore int

	for depth := minDepth; depth < MaxPly; depth++ {
		if s.timeUp() || s.stopFlag.Load() {
			break
		}

		s.incomplete = false
		score := s.negamax(depth, 0, -Infinity, Infinity)

		if s.stopFlag.Load() || s.incomplete {
			break
		}

		if s.pv.length[0] > 0 {
			bestMove = s.pv.moves[0][0]
			bestScore = score
		}
	}

	return bestMove, bestScore
}

// timeUp reports whether the wall-clock deadline has passed. Only called
// from the root loop and at the top of each iterative-deepening depth
// (spec.md §5); deeper recursion never checks the clock.
func (s *Searcher) timeUp() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// negamax implements spec.md §4.8's Negamax(alpha, beta, depth, root_distance).
func (s *Searcher) negamax(depth, ply int, alpha, beta int) int {
	s.nodes++
	s.pv.length[ply] = ply

	if ply > 0 && s.isDraw() {
		return 0
	}

	var ttMove board.Move
	ttEntry, found := s.tt.Probe(s.pos.Hash, s.pos.SideToMove)
	if found {
		ttMove = ttEntry.BestMove
		if int(ttEntry.Depth) >= depth {
			score := AdjustScoreFromTT(int(ttEntry.Score), ply)
			switch ttEntry.Flag {
			case TTExact:
				return score
			case TTLowerBound:
				if score > alpha {
					alpha = score
				}
			case TTUpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, quiescencePlies)
	}

	inCheck := s.pos.IsInCheck()
	moves := s.pos.GenerateLegalMoves()

	if moves.Len() == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	scores := ScoreMoves(s.pos, moves, ttMove)

	bestScore := -Infinity
	bestMove := board.NoMove
	flag := TTUpperBound

	for i := 0; i < moves.Len(); i++ {
		if ply == 0 && i > 0 && s.timeUp() {
			s.incomplete = true
			break
		}

		pickMove(moves, scores, i)
		move := moves.Get(i)

		s.undoStack[ply] = s.pos.MakeMove(move)
		s.rep.Push(s.pos.Hash)

		childDepth := depth - 1
		if s.pos.IsInCheck() {
			childDepth++
		}

		score := -s.negamax(childDepth, ply+1, -beta, -alpha)

		s.rep.Pop(s.pos.Hash)
		s.pos.UndoMove(move, s.undoStack[ply])

		if score > bestScore {
			bestScore = score
			bestMove = move

			if score > alpha {
				alpha = score
				flag = TTExact

				s.pv.moves[ply][ply] = move
				for j := ply + 1; j < s.pv.length[ply+1]; j++ {
					s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
				}
				s.pv.length[ply] = s.pv.length[ply+1]
			}
		}

		if score >= beta {
			s.tt.Store(s.pos.Hash, s.pos.SideToMove, depth, AdjustScoreToTT(score, ply), TTLowerBound, bestMove)
			return beta
		}
	}

	s.tt.Store(s.pos.Hash, s.pos.SideToMove, depth, AdjustScoreToTT(bestScore, ply), flag, bestMove)

	return bestScore
}

// quiescence implements spec.md §4.8's Quiescence(alpha, beta, plies_left).
func (s *Searcher) quiescence(alpha, beta int, pliesLeft int) int {
	s.nodes++

	standPat := Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if pliesLeft == 0 {
		return alpha
	}

	moves := s.pos.GenerateLegalCaptures()
	scores := ScoreMoves(s.pos, moves, board.NoMove)

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		move := moves.Get(i)

		undo := s.pos.MakeMove(move)
		s.rep.Push(s.pos.Hash)

		score := -s.quiescence(-beta, -alpha, pliesLeft-1)

		s.rep.Pop(s.pos.Hash)
		s.pos.UndoMove(move, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// isDraw short-circuits recursion per spec.md §4.8's draw conditions: the
// halfmove clock, a repetition count already at 2 (a third occurrence
// during this search line is itself the draw), or insufficient material.
func (s *Searcher) isDraw() bool {
	if s.pos.HalfMoveClock >= 100 {
		return true
	}
	if s.rep.IsRepeated(s.pos.Hash, 2) {
		return true
	}
	return s.pos.IsInsufficientMaterial()
}

// GetPV returns the principal variation left by the most recent iteration,
// including one that the deadline cut short.
func (s *Searcher) GetPV() []board.Move {
	pv := make([]board.Move, s.pv.length[0])
	for i := 0; i < s.pv.length[0]; i++ {
		pv[i] = s.pv.moves[0][i]
	}
	return pv
}
