package board

// movegen.go generates pseudo-legal moves per piece kind and filters them to
// strictly legal moves using the pin/check maps from pins.go — never by
// making and unmaking the move. Grounded on
// hailam-chessplay/internal/board/movegen.go's per-piece loops
// (generateAllMoves/generatePawnMoves/generateCastlingMoves); the teacher's
// own legality filter, IsLegal, actually calls MakeMove/UnmakeMove to test
// every non-king move (plus a stray debug fmt.Printf left in that hot path)
// — exactly the trial-make approach spec.md §4.4 forbids, so it is replaced
// here with isLegal's direct pin/check-map predicate.

// GenerateLegalMoves returns every strictly legal move for the side to move.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generateAllMoves(ml)
	return p.filterLegal(ml)
}

// GeneratePseudoLegalMoves returns every pseudo-legal move, without the
// legality filter (may leave the mover's king in check).
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generateAllMoves(ml)
	return ml
}

// GenerateLegalCaptures returns every strictly legal capture (and
// promotion, which counts as a capture for quiescence per spec.md §4.8).
func (p *Position) GenerateLegalCaptures() *MoveList {
	ml := &MoveList{}
	p.generateCaptures(ml)
	return p.filterLegal(ml)
}

func (p *Position) filterLegal(ml *MoveList) *MoveList {
	result := &MoveList{}
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if p.isLegal(m) {
			result.Add(m)
		}
	}
	return result
}

func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	enemies := p.Occupied[them]

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		attacks := KnightAttacks(from) &^ p.Occupied[us]
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		attacks := BishopAttacks(from, occupied) &^ p.Occupied[us]
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		attacks := RookAttacks(from, occupied) &^ p.Occupied[us]
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		attacks := QueenAttacks(from, occupied) &^ p.Occupied[us]
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}

	p.generateKingMoves(ml, us)
	p.generateCastlingMoves(ml, us)
}

func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	for nonPromo := push1 &^ promotionRank; nonPromo != 0; {
		to := nonPromo.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir), to))
	}
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to))
	}
	for nonPromoL := attackL &^ promotionRank; nonPromoL != 0; {
		to := nonPromoL.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir+1), to))
	}
	for nonPromoR := attackR &^ promotionRank; nonPromoR != 0; {
		to := nonPromoR.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir-1), to))
	}
	for promoPush := push1 & promotionRank; promoPush != 0; {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to)
	}
	for promoL := attackL & promotionRank; promoL != 0; {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to)
	}
	for promoR := attackR & promotionRank; promoR != 0; {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to)
	}

	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			ml.Add(NewEnPassant(epAttackers.PopLSB(), p.EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

func (p *Position) generateKingMoves(ml *MoveList, us Color) {
	from := p.KingSquare[us]
	attacks := KingAttacks(from) &^ p.Occupied[us]
	for attacks != 0 {
		ml.Add(NewMove(from, attacks.PopLSB()))
	}
}

func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&WhiteKingSide != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewCastling(E1, G1))
		}
		if p.CastlingRights&WhiteQueenSide != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewCastling(E1, C1))
		}
		return
	}

	if p.CastlingRights&BlackKingSide != 0 &&
		p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
		ml.Add(NewCastling(E8, G8))
	}
	if p.CastlingRights&BlackQueenSide != 0 &&
		p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
		ml.Add(NewCastling(E8, C8))
	}
}

func (p *Position) generateCaptures(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	enemies := p.Occupied[them]
	occupied := p.AllOccupied
	pawns := p.Pieces[us][Pawn]

	var attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	for nonPromoL := attackL &^ promotionRank; nonPromoL != 0; {
		to := nonPromoL.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir+1), to))
	}
	for nonPromoR := attackR &^ promotionRank; nonPromoR != 0; {
		to := nonPromoR.PopLSB()
		ml.Add(NewMove(Square(int(to)-pushDir-1), to))
	}
	for promoL := attackL & promotionRank; promoL != 0; {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to)
	}
	for promoR := attackR & promotionRank; promoR != 0; {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to)
	}

	empty := ^occupied
	var pushPromo Bitboard
	if us == White {
		pushPromo = pawns.North() & empty & Rank8
	} else {
		pushPromo = pawns.South() & empty & Rank1
	}
	for pushPromo != 0 {
		to := pushPromo.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to)
	}

	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			ml.Add(NewEnPassant(epAttackers.PopLSB(), p.EnPassant))
		}
	}

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		attacks := KnightAttacks(from) & enemies
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		attacks := BishopAttacks(from, occupied) & enemies
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		attacks := RookAttacks(from, occupied) & enemies
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		attacks := QueenAttacks(from, occupied) & enemies
		for attacks != 0 {
			ml.Add(NewMove(from, attacks.PopLSB()))
		}
	}
	from := p.KingSquare[us]
	for attacks := KingAttacks(from) & enemies; attacks != 0; {
		ml.Add(NewMove(from, attacks.PopLSB()))
	}
}

// epCapturedSquare returns the square of the pawn actually removed by an
// en-passant capture landing on `to` (one rank behind the target, from the
// mover's perspective).
func epCapturedSquare(to Square, us Color) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

// isLegal is the spec.md §4.4 legality predicate: it consults the
// precomputed pin/check maps directly and never makes/unmakes the move.
func (p *Position) isLegal(m Move) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	ksq := p.KingSquare[us]

	if from == ksq {
		if m.IsCastling() {
			return true // path and traversed squares already validated during generation
		}
		occWithoutKing := p.AllOccupied &^ SquareBB(from)
		return p.AttackersByColor(to, them, occWithoutKing) == 0
	}

	if p.InDoubleCheck {
		return false
	}

	if p.InCheck {
		resolves := p.CheckMask.IsSet(to)
		if m.IsEnPassant() {
			resolves = resolves || p.CheckMask.IsSet(epCapturedSquare(to, us))
		}
		if !resolves {
			return false
		}
		if p.isPinned(from) {
			return false
		}
	} else if p.isPinned(from) {
		d := DirectionBetween(from, ksq)
		dt := DirectionBetween(to, ksq)
		if dt != d && dt != -d {
			return false
		}
	}

	if m.IsEnPassant() && p.enPassantExposesKing(m) {
		return false
	}

	return true
}

// enPassantExposesKing implements spec.md §4.4 point 4's specialized probe:
// en-passant removes two pawns from the same rank at once, which a
// single-blocker pin test cannot catch, so it is checked separately by
// simulating the removal and re-scanning for a newly revealed rook/queen.
func (p *Position) enPassantExposesKing(m Move) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	ksq := p.KingSquare[us]

	if ksq.Rank() != from.Rank() {
		return false
	}

	capturedSq := epCapturedSquare(to, us)
	occ := p.AllOccupied.Clear(from).Clear(capturedSq).Set(to)

	attackers := RookAttacks(ksq, occ) & (p.Pieces[them][Rook] | p.Pieces[them][Queen])
	return attackers != 0
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	ml := p.GeneratePseudoLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		if p.isLegal(ml.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck && !p.HasLegalMoves()
}

// IsDrawByRules reports a draw detectable from the position alone
// (stalemate, the 50-move rule, or insufficient material). Repetition is
// tracked by the search session's repetition table, not here, per
// spec.md §4.7's ownership split.
func (p *Position) IsDrawByRules() bool {
	if p.IsStalemate() {
		return true
	}
	if p.HalfMoveClock >= 100 {
		return true
	}
	return p.IsInsufficientMaterial()
}
