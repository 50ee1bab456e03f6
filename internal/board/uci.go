package board

// uci.go provides the UCI move-string codec named as free functions, in the
// style of treepeck-chego/uci.go's Move2UCI, on top of Move's own
// String/ParseMove methods (grounded on
// hailam-chessplay/internal/board/move.go).

// MoveToUCI converts m to its long-algebraic UCI string, e.g. "e2e4", "e7e8q".
func MoveToUCI(m Move) string {
	return m.String()
}

// UCIToMove parses a UCI move string against pos, which disambiguates
// capture/en-passant/castling the wire format alone cannot express.
func UCIToMove(s string, pos *Position) (Move, error) {
	return ParseMove(s, pos)
}
