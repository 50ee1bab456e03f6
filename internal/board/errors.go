package board

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a board error per the core's error taxonomy: only
// InvalidFen and IllegalMove are recoverable and returned to the caller;
// out-of-range indices are a programmer error and panic instead.
type ErrorKind int

const (
	InvalidFen ErrorKind = iota
	IllegalMove
)

// ErrInvalidFen is wrapped (via fmt.Errorf's %w) into every FEN parse
// failure so callers can test with errors.Is(err, board.ErrInvalidFen).
var ErrInvalidFen = errors.New("invalid fen")

// ErrIllegalMove is wrapped into every move rejected by Position.Make or by
// the UCI/SAN codecs, so callers can test with errors.Is(err, board.ErrIllegalMove).
var ErrIllegalMove = errors.New("illegal move")

// outOfRange panics on a programmer error: a square, rank, or file outside
// its valid range. The core never returns this to a caller.
func outOfRange(what string, v int) {
	panic(fmt.Sprintf("board: %s out of range: %d", what, v))
}
