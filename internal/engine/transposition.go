package engine

import (
	"unsafe"

	"github.com/mpetrov/chesscore/internal/board"
)

// transposition.go implements the two-bound transposition table. Grounded on
// hailam-chessplay/internal/engine/transposition.go's open-addressed,
// power-of-two-capacity, always-replace design, widened to store the full
// 64-bit Zobrist key (the teacher keeps only the upper 32 bits plus a
// depth>0 sentinel) and the side to move, since a probe must require both
// to match before trusting a stored bound.

// TTFlag indicates the kind of bound stored in a TTEntry.
type TTFlag uint8

const (
	TTExact TTFlag = iota
	TTLowerBound
	TTUpperBound
)

// TTEntry is one transposition table slot.
type TTEntry struct {
	Key         uint64
	BestMove    board.Move
	Score       int32
	Depth       int8
	Flag        TTFlag
	SideToMove  board.Color
	initialized bool
}

// TranspositionTable is a fixed-capacity, power-of-two-sized hash table of
// search results, indexed by the low bits of the Zobrist key.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64

	hits   uint64
	probes uint64
}

// NewTranspositionTable allocates a table sized to approximately sizeMB
// megabytes, rounded down to the nearest power-of-two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const entrySize = uint64(unsafe.Sizeof(TTEntry{}))
	numEntries := roundDownToPowerOf2(uint64(sizeMB) * 1024 * 1024 / entrySize)
	if numEntries == 0 {
		numEntries = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe returns the stored entry for hash/side, requiring both the full key
// and the side to move to match (spec.md §4.6).
func (tt *TranspositionTable) Probe(hash uint64, side board.Color) (TTEntry, bool) {
	tt.probes++
	entry := tt.entries[hash&tt.mask]
	if entry.initialized && entry.Key == hash && entry.SideToMove == side {
		tt.hits++
		return entry, true
	}
	return TTEntry{}, false
}

// Store records a search result, always replacing whatever previously
// occupied the slot (spec.md §4.6's "always replace" policy).
func (tt *TranspositionTable) Store(hash uint64, side board.Color, depth int, score int, flag TTFlag, bestMove board.Move) {
	tt.entries[hash&tt.mask] = TTEntry{
		Key:         hash,
		BestMove:    bestMove,
		Score:       int32(score),
		Depth:       int8(depth),
		Flag:        flag,
		SideToMove:  side,
		initialized: true,
	}
}

// Clear empties the table and resets statistics.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.hits = 0
	tt.probes = 0
}

// HitRate returns the probe hit rate as a percentage, for diagnostics.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// AdjustScoreFromTT converts a stored mate score (relative to the node it
// was stored at) into one relative to the current root distance.
func AdjustScoreFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT is the inverse of AdjustScoreFromTT, applied before storing.
func AdjustScoreToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
