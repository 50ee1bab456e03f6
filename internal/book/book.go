// Package book implements an opening-book adapter for the search engine:
// given the SAN moves played so far, suggest a move drawn from a database
// of complete games, so the engine can skip searching well-known openings.
package book

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"
)

// Opener matches a growing prefix of played SAN moves against a line
// database and returns a uniformly random continuation. Grounded on
// original_source/opening/opener.py's Opener class: add_to_line narrows
// the candidate game list by prefix match, get_move picks uniformly at
// random among what remains. This reimplements that contract
// statelessly (Move takes the played-so-far slice instead of the
// original's internal ply counter) so one Opener can serve concurrent
// lookups against different games.
type Opener struct {
	lines [][]string
}

// Load reads a book file: one line per recorded game, moves as
// space-separated SAN tokens, per spec.md §6's persisted book format.
func Load(path string) (*Opener, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader is Load against an already-open reader, for embedding or testing.
func LoadReader(r io.Reader) (*Opener, error) {
	var lines [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Opener{lines: lines}, nil
}

// NewFromLines builds an Opener directly from tokenized game lines, for
// callers that already have the book in memory (e.g. the Badger-backed
// cache in cache.go).
func NewFromLines(lines [][]string) *Opener {
	return &Opener{lines: lines}
}

// Move returns a uniformly random SAN continuation among every recorded
// game whose first len(playedSAN) moves exactly match playedSAN and which
// has at least one more move to offer. ok is false once no game matches.
func (o *Opener) Move(playedSAN []string) (string, bool) {
	candidates := o.continuations(playedSAN)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rand.Intn(len(candidates))], true
}

// continuations returns every next-move candidate, in game order, for
// games whose prefix matches playedSAN.
func (o *Opener) continuations(playedSAN []string) []string {
	var candidates []string
	for _, game := range o.lines {
		if len(game) <= len(playedSAN) {
			continue
		}
		if !hasPrefix(game, playedSAN) {
			continue
		}
		candidates = append(candidates, game[len(playedSAN)])
	}
	return candidates
}

func hasPrefix(game, prefix []string) bool {
	for i, move := range prefix {
		if game[i] != move {
			return false
		}
	}
	return true
}

// Size returns the number of games loaded.
func (o *Opener) Size() int {
	if o == nil {
		return 0
	}
	return len(o.lines)
}
