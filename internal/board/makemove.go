package board

import "fmt"

// makemove.go applies and reverts moves. Grounded on
// hailam-chessplay/internal/board/movegen.go's MakeMove/UnmakeMove for the
// move-application sequence (capture removal, piece relocation, promotion,
// castling rook move, castling-rights bookkeeping, halfmove clock,
// side-to-move flip, Zobrist XOR order) and position.go's setPiece/
// removePiece/movePiece.
//
// UndoMove differs from the teacher in one respect: instead of reverse-
// computing each field, it restores the full pre-move snapshot captured in
// UndoInfo. spec.md §7 asks the core not to corrupt state on an illegal
// make call ("validate before mutation or snapshot before mutation"); a
// full snapshot gives the same bit-for-bit restoration guarantee spec.md
// §8 requires while removing an entire class of reverse-arithmetic bugs in
// castling/en-passant/promotion unwinding.

func snapshot(p *Position) UndoInfo {
	u := UndoInfo{
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
		KingSquare:     p.KingSquare,
		Pieces:         p.Pieces,
		Occupied:       p.Occupied,
		AllOccupied:    p.AllOccupied,
		AttackBB:       p.AttackBB,
		CheckMask:      p.CheckMask,
		PinMask:        p.PinMask,
		Checkers:       p.Checkers,
		NumCheckers:    p.NumCheckers,
		InCheck:        p.InCheck,
		InDoubleCheck:  p.InDoubleCheck,
	}
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			u.PieceList[c][k] = append([]Square(nil), p.PieceList[c][k]...)
		}
	}
	return u
}

// Make is the validating entry point spec.md §6 names as Position::make: it
// checks m against p.GenerateLegalMoves() before applying it, returning
// ErrIllegalMove (per spec.md §7) instead of mutating p when m is not a
// legal move in the current position.
func (p *Position) Make(m Move) (UndoInfo, error) {
	if !p.GenerateLegalMoves().Contains(m) {
		return UndoInfo{}, fmt.Errorf("%w: %s is not legal in this position", ErrIllegalMove, m)
	}
	return p.MakeMove(m), nil
}

// MakeMove applies m to p and returns the information needed to undo it.
// m must already be known legal; MakeMove itself performs no validation
// and corrupts p if handed a move GenerateLegalMoves() would not produce.
// Call Make instead unless the caller already validated m (the search
// recursion does, via its own move generation, so it calls MakeMove
// directly to skip the redundant Contains scan).
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := snapshot(p)

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)
	kind := piece.Kind()

	p.Hash ^= ZobristSideToMove()
	p.Hash ^= ZobristCastling(p.CastlingRights)
	if p.EnPassant != NoSquare {
		p.Hash ^= ZobristEnPassant(p.EnPassant.File())
	}
	p.EnPassant = NoSquare

	undo.CapturedPiece = NoPiece
	undo.CapturedSquare = NoSquare

	if m.IsEnPassant() {
		capSq := epCapturedSquare(to, us)
		undo.CapturedPiece = p.removePiece(capSq)
		undo.CapturedSquare = capSq
		p.Hash ^= ZobristPiece(Pawn, them, capSq)
	} else if captured := p.PieceAt(to); captured != NoPiece {
		undo.CapturedPiece = captured
		undo.CapturedSquare = to
		p.removePiece(to)
		p.Hash ^= ZobristPiece(captured.Kind(), them, to)
	}

	p.movePiece(from, to)
	p.Hash ^= ZobristPiece(kind, us, from)
	p.Hash ^= ZobristPiece(kind, us, to)

	if m.IsPromotion() {
		promo := m.Promotion()
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promo] |= SquareBB(to)
		p.removeFromPieceList(us, Pawn, to)
		p.addToPieceList(us, promo, to)
		p.Hash ^= ZobristPiece(Pawn, us, to)
		p.Hash ^= ZobristPiece(promo, us, to)
	}

	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			rookFrom, rookTo = NewSquare(7, from.Rank()), NewSquare(5, from.Rank())
		} else {
			rookFrom, rookTo = NewSquare(0, from.Rank()), NewSquare(3, from.Rank())
		}
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= ZobristPiece(Rook, us, rookFrom)
		p.Hash ^= ZobristPiece(Rook, us, rookTo)
	}

	if kind == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSide | WhiteQueenSide
		} else {
			p.CastlingRights &^= BlackKingSide | BlackQueenSide
		}
	}
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSide
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSide
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSide
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSide
	}
	p.Hash ^= ZobristCastling(p.CastlingRights)

	if kind == Pawn && abs(int(to)-int(from)) == 16 {
		epSquare := Square((int(from) + int(to)) / 2)
		p.EnPassant = epSquare
		p.Hash ^= ZobristEnPassant(epSquare.File())
	}

	if kind == Pawn || undo.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.updateAttackMaps()
	p.updatePinsAndChecks()

	return undo
}

// UndoMove reverts the last move applied via MakeMove, restoring every
// field captured in undo, including the Zobrist hash, bit-for-bit.
func (p *Position) UndoMove(m Move, undo UndoInfo) {
	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.FullMoveNumber = undo.FullMoveNumber
	p.Hash = undo.Hash
	p.KingSquare = undo.KingSquare
	p.Pieces = undo.Pieces
	p.Occupied = undo.Occupied
	p.AllOccupied = undo.AllOccupied
	p.AttackBB = undo.AttackBB
	p.CheckMask = undo.CheckMask
	p.PinMask = undo.PinMask
	p.Checkers = undo.Checkers
	p.NumCheckers = undo.NumCheckers
	p.InCheck = undo.InCheck
	p.InDoubleCheck = undo.InDoubleCheck
	p.PieceList = undo.PieceList
	p.SideToMove = p.SideToMove.Other()
}
