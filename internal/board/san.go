package board

import (
	"fmt"
	"strings"
)

// san.go implements Standard Algebraic Notation encode/decode. Grounded on
// hailam-chessplay/internal/board/san.go, adapted to PieceKind naming and to
// return ErrIllegalMove instead of a silent NoMove on parse failure.

// ToSAN converts m to Standard Algebraic Notation, given the position it is
// about to be applied to.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return m.String()
	}

	if m.IsCastling() {
		if to > from {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	kind := piece.Kind()

	if kind != Pawn {
		sb.WriteByte("PNBRQK"[kind])
		sb.WriteString(disambiguation(pos, m, kind))
	}

	isCapture := m.IsCapture(pos)
	if isCapture {
		if kind == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promotion()])
	}

	after := pos.Copy()
	after.MakeMove(m)
	if after.IsCheckmate() {
		sb.WriteByte('#')
	} else if after.IsInCheck() {
		sb.WriteByte('+')
	}

	return sb.String()
}

// disambiguation returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece kind to the same
// destination.
func disambiguation(pos *Position, m Move, kind PieceKind) string {
	from := m.From()
	to := m.To()
	us := pos.SideToMove
	sameKind := pos.Pieces[us][kind]

	var candidates []Square
	all := pos.GenerateLegalMoves()
	for i := 0; i < all.Len(); i++ {
		mv := all.Get(i)
		if mv.To() != to || mv.From() == from {
			continue
		}
		if sameKind.IsSet(mv.From()) {
			candidates = append(candidates, mv.From())
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + from.File()))
	}
	if !sameRank {
		return string(rune('1' + from.Rank()))
	}
	return from.String()
}

// ParseSAN parses a SAN string against pos and returns the matching legal
// move, or ErrIllegalMove if no legal move matches.
func ParseSAN(s string, pos *Position) (Move, error) {
	orig := s
	s = strings.TrimSpace(s)

	castle := NoMove
	if s == "O-O" || s == "0-0" {
		castle = NewCastling(E1, G1)
		if pos.SideToMove == Black {
			castle = NewCastling(E8, G8)
		}
	} else if s == "O-O-O" || s == "0-0-0" {
		castle = NewCastling(E1, C1)
		if pos.SideToMove == Black {
			castle = NewCastling(E8, C8)
		}
	}
	if castle != NoMove {
		if !pos.GenerateLegalMoves().Contains(castle) {
			return NoMove, fmt.Errorf("%w: castling %q is not legal here", ErrIllegalMove, orig)
		}
		return castle, nil
	}

	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	promo := NoPieceKind
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		switch s[idx+1] {
		case 'N':
			promo = Knight
		case 'B':
			promo = Bishop
		case 'R':
			promo = Rook
		case 'Q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("%w: invalid promotion in SAN %q", ErrIllegalMove, orig)
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	kind := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			kind = Knight
		case 'B':
			kind = Bishop
		case 'R':
			kind = Rook
		case 'Q':
			kind = Queen
		case 'K':
			kind = King
		default:
			return NoMove, fmt.Errorf("%w: invalid piece letter in SAN %q", ErrIllegalMove, orig)
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, fmt.Errorf("%w: malformed SAN %q", ErrIllegalMove, orig)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, fmt.Errorf("%w: malformed SAN %q", ErrIllegalMove, orig)
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		}
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		if mv.To() != dest {
			continue
		}
		from := mv.From()
		piece := pos.PieceAt(from)
		if piece.Kind() != kind {
			continue
		}
		if disambigFile >= 0 && from.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && from.Rank() != disambigRank {
			continue
		}
		if isCapture && !mv.IsCapture(pos) {
			continue
		}
		if promo != NoPieceKind && (!mv.IsPromotion() || mv.Promotion() != promo) {
			continue
		}
		return mv, nil
	}

	return NoMove, fmt.Errorf("%w: no legal move matches SAN %q", ErrIllegalMove, orig)
}

// MovesToSAN renders a sequence of moves played from pos into their SAN
// strings, advancing a scratch copy of pos one move at a time.
func MovesToSAN(pos *Position, moves []Move) []string {
	result := make([]string, len(moves))
	p := pos.Copy()
	for i, m := range moves {
		result[i] = m.ToSAN(p)
		p.MakeMove(m)
	}
	return result
}
