// Package engine implements the chess search engine: transposition and
// repetition tables, move ordering, iterative-deepening negamax search with
// quiescence, a default evaluator, and the Engine type that wires them
// together behind spec.md §6's Engine::search(pos, time_budget) shape.
package engine

import (
	"log"
	"time"

	"github.com/mpetrov/chesscore/internal/board"
)

// engine.go wires the package's pieces into spec.md §6's public surface.
// Grounded on hailam-chessplay/internal/engine/engine.go's Engine struct
// and SearchWithLimits flow (book probe first, then search), trimmed of
// the teacher's Lazy-SMP workers, NNUE network, tablebase prober, and
// difficulty/UCI-limits machinery — none of which spec.md's flat
// `search(pos, time_budget)` entry point calls for. The opening-book probe
// is kept, repointed at the new internal/book package.

// BookSource is the subset of internal/book's Opener/CachedOpener surface
// Engine depends on, kept as an interface so either can be plugged in, or
// neither (a nil BookSource disables the book probe entirely).
type BookSource interface {
	Move(playedSAN []string) (string, bool)
}

// Engine owns one search session's transposition table, repetition table,
// and searcher, plus the SAN history of moves actually played in the
// current game (used only to query the opening book).
type Engine struct {
	tt       *TranspositionTable
	rep      *RepetitionTable
	searcher *Searcher

	minDepth int
	book     BookSource

	playedSAN []string
}

const defaultRepetitionCapacity = 1 << 14

// NewEngine creates an Engine with a transposition table of approximately
// ttSizeMB megabytes and a minimum iterative-deepening depth of 1.
func NewEngine(ttSizeMB int) *Engine {
	log.Printf("[Engine] creating engine with %d MB transposition table", ttSizeMB)
	tt := NewTranspositionTable(ttSizeMB)
	rep := NewRepetitionTable(defaultRepetitionCapacity)
	return &Engine{
		tt:       tt,
		rep:      rep,
		searcher: NewSearcher(tt, rep),
		minDepth: 1,
	}
}

// SetBook installs the opening-book adapter consulted before search.
func (e *Engine) SetBook(b BookSource) {
	e.book = b
}

// SetMinDepth sets the depth iterative deepening starts from (spec.md
// §4.8's "from depth min_depth upward"). Values below 1 are clamped to 1.
func (e *Engine) SetMinDepth(d int) {
	if d < 1 {
		d = 1
	}
	e.minDepth = d
}

// NewGame resets all game-scoped state: the book history, the repetition
// table, and the transposition table.
func (e *Engine) NewGame() {
	e.playedSAN = nil
	e.rep.Clear()
	e.tt.Clear()
}

// Play applies m to pos as a move actually played in the game (as opposed
// to one explored during search), recording its SAN for book lookups and
// pushing the resulting hash into the repetition table. The returned
// UndoInfo lets a caller support takebacks via Undo. Play validates m
// against pos's legal moves (spec.md §7's IllegalMove), since unlike
// search's own recursion this entry point takes moves from an external
// caller that may hand it a stale or fabricated move.
func (e *Engine) Play(pos *board.Position, m board.Move) (board.UndoInfo, error) {
	san := m.ToSAN(pos)
	undo, err := pos.Make(m)
	if err != nil {
		log.Printf("[Engine] rejected illegal move %s: %v", m, err)
		return board.UndoInfo{}, err
	}
	e.rep.Push(pos.Hash)
	e.playedSAN = append(e.playedSAN, san)
	return undo, nil
}

// Undo reverses the most recent Play call.
func (e *Engine) Undo(pos *board.Position, m board.Move, undo board.UndoInfo) {
	e.rep.Pop(pos.Hash)
	pos.UndoMove(m, undo)
	if len(e.playedSAN) > 0 {
		e.playedSAN = e.playedSAN[:len(e.playedSAN)-1]
	}
}

// Search returns the engine's chosen move for pos, searching for up to
// budget before returning the best move found so far. It implements
// spec.md §6's Engine::search(pos, time_budget) → Option<Move>: ok is
// false when no book move applies and either pos has no legal moves or
// budget runs out before the first iteration completes.
//
// A book move, when available, is returned immediately without spending
// any of budget on search.
func (e *Engine) Search(pos *board.Position, budget time.Duration) (board.Move, bool) {
	if e.book != nil {
		if sanMove, ok := e.book.Move(e.playedSAN); ok {
			if m, err := board.ParseSAN(sanMove, pos); err == nil {
				log.Printf("[Engine] book move %s", sanMove)
				return m, true
			}
		}
	}

	deadline := time.Now().Add(budget)
	move, _ := e.searcher.Search(pos, e.minDepth, deadline)
	if move == board.NoMove {
		log.Printf("[Engine] search found no legal move")
		return board.NoMove, false
	}
	return move, true
}

// Stop signals an in-progress Search to discard its current iteration once
// that iteration returns, for a caller cancelling a search from another
// goroutine (spec.md §5's one cross-goroutine exception to an otherwise
// single-threaded search).
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// PV returns the principal variation left by the most recent
// iterative-deepening iteration, including one that the deadline cut short.
func (e *Engine) PV() []board.Move {
	return e.searcher.GetPV()
}

// TranspositionHitRate reports the transposition table's probe hit rate as
// a percentage, for diagnostics.
func (e *Engine) TranspositionHitRate() float64 {
	return e.tt.HitRate()
}

// Clear empties the transposition and repetition tables without resetting
// the played-move history.
func (e *Engine) Clear() {
	e.tt.Clear()
	e.rep.Clear()
}
