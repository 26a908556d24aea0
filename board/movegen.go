package board

// promotionKinds lists the four piece kinds a pawn may promote to, queen
// first since it's by far the common case.
var promotionKinds = [4]PieceType{Queen, Rook, Knight, Bishop}

// appendPawnMove appends one move record to moves, expanding into the four
// promotion variants if to lands on the back rank.
func appendPawnMove(moves []Move, from, to Square) []Move {
	rank := to.Rank()
	if rank == 0 || rank == 7 {
		for _, promo := range promotionKinds {
			moves = append(moves, Move{From: SquareBB(from), To: SquareBB(to), Piece: Pawn, Promotion: promo})
		}
		return moves
	}
	return append(moves, Move{From: SquareBB(from), To: SquareBB(to), Piece: Pawn, Promotion: NoPieceType})
}

func appendTargets(moves []Move, from Square, piece PieceType, targets Bitboard) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		moves = append(moves, Move{From: SquareBB(from), To: SquareBB(to), Piece: piece, Promotion: NoPieceType})
	}
	return moves
}

// generatePseudoLegalMoves enumerates every move that respects piece
// movement and occupancy, per spec.md §4.3, plus castling moves (§9's
// supplemented generation). King safety is not checked here.
func (p *Position) generatePseudoLegalMoves() []Move {
	mover := p.SideToMove()
	opp := mover.Other()
	occAll := p.AllOccupied()
	occOwn := p.Occupied[mover]
	occOpp := p.Occupied[opp]

	moves := make([]Move, 0, 48)

	for bb := p.Pieces[mover][Pawn]; bb != 0; {
		from := bb.PopLSB()
		single := PawnPushTarget(from, mover) &^ occAll
		var double Bitboard
		if single != 0 {
			double = PawnDoubleTarget(from, mover) &^ occAll
		}
		captures := PawnCaptureAttacks(from, mover) & (occOpp | p.EnPassant)
		for targets := single | double | captures; targets != 0; {
			to := targets.PopLSB()
			moves = appendPawnMove(moves, from, to)
		}
	}

	for bb := p.Pieces[mover][Knight]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, Knight, KnightAttacks(from)&^occOwn)
	}

	for bb := p.Pieces[mover][Bishop]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, Bishop, BishopAttacks(from, occAll)&^occOwn)
	}

	for bb := p.Pieces[mover][Rook]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, Rook, RookAttacks(from, occAll)&^occOwn)
	}

	for bb := p.Pieces[mover][Queen]; bb != 0; {
		from := bb.PopLSB()
		moves = appendTargets(moves, from, Queen, QueenAttacks(from, occAll)&^occOwn)
	}

	if kingBB := p.Pieces[mover][King]; kingBB != 0 {
		from := kingBB.LSB()
		moves = appendTargets(moves, from, King, KingAttacks(from)&^occOwn)
	}

	moves = p.appendCastlingMoves(moves, mover)

	return moves
}

// appendCastlingMoves appends any castling moves currently available to
// mover: the right must still be live, the squares between king and rook
// must be empty, and the king's origin, transit, and destination squares
// must all be unattacked.
func (p *Position) appendCastlingMoves(moves []Move, mover Color) []Move {
	occAll := p.AllOccupied()
	opp := mover.Other()

	if mover == White {
		if p.Castling.Has(WhiteKingside) && occAll&whiteKingsideEmpty == 0 &&
			!p.IsSquareAttacked(whiteKingHome, opp) &&
			!p.IsSquareAttacked(whiteRookDestK, opp) &&
			!p.IsSquareAttacked(whiteKingDestK, opp) {
			moves = append(moves, Move{From: SquareBB(whiteKingHome), To: SquareBB(whiteKingDestK), Piece: King, Promotion: NoPieceType})
		}
		if p.Castling.Has(WhiteQueenside) && occAll&whiteQueensideEmpty == 0 &&
			!p.IsSquareAttacked(whiteKingHome, opp) &&
			!p.IsSquareAttacked(whiteRookDestQ, opp) &&
			!p.IsSquareAttacked(whiteKingDestQ, opp) {
			moves = append(moves, Move{From: SquareBB(whiteKingHome), To: SquareBB(whiteKingDestQ), Piece: King, Promotion: NoPieceType})
		}
		return moves
	}

	if p.Castling.Has(BlackKingside) && occAll&blackKingsideEmpty == 0 &&
		!p.IsSquareAttacked(blackKingHome, opp) &&
		!p.IsSquareAttacked(blackRookDestK, opp) &&
		!p.IsSquareAttacked(blackKingDestK, opp) {
		moves = append(moves, Move{From: SquareBB(blackKingHome), To: SquareBB(blackKingDestK), Piece: King, Promotion: NoPieceType})
	}
	if p.Castling.Has(BlackQueenside) && occAll&blackQueensideEmpty == 0 &&
		!p.IsSquareAttacked(blackKingHome, opp) &&
		!p.IsSquareAttacked(blackRookDestQ, opp) &&
		!p.IsSquareAttacked(blackKingDestQ, opp) {
		moves = append(moves, Move{From: SquareBB(blackKingHome), To: SquareBB(blackKingDestQ), Piece: King, Promotion: NoPieceType})
	}
	return moves
}

// computeLegalMoves filters the pseudo-legal list by king safety.
func (p *Position) computeLegalMoves() []Move {
	mover := p.SideToMove()
	pseudo := p.generatePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.isLegal(m, mover) {
			legal = append(legal, m)
		}
	}
	return legal
}

// applyMove executes m against p per spec.md §4.5: captures, promotion,
// castling rook displacement, en passant capture, en passant target
// bookkeeping, castling-rights expiry, then flips the side to move and
// recomputes the legal-move cache.
func (p *Position) applyMove(m Move) {
	mover := p.SideToMove()
	opp := mover.Other()
	from, to := m.FromSquare(), m.ToSquare()
	oldEnPassant := p.EnPassant

	p.removePiece(mover, m.Piece, from)

	isCapture := p.Occupied[opp]&m.To != 0
	if isCapture {
		p.removeAnyAt(opp, to)
	}

	if m.Promotion != NoPieceType {
		p.setPiece(mover, m.Promotion, to)
	} else {
		p.setPiece(mover, m.Piece, to)
	}

	if m.Piece == King {
		p.applyCastlingRookMove(mover, from, to)
	} else if m.Piece == Pawn && oldEnPassant != 0 && m.To == oldEnPassant {
		capturedSq := to + 8
		if mover == White {
			capturedSq = to - 8
		}
		p.removeAnyAt(opp, capturedSq)
	}

	p.Castling &^= rightsLostBySquare(from)
	if isCapture {
		p.Castling &^= rightsLostBySquare(to)
	}

	p.EnPassant = 0
	if m.Piece == Pawn {
		fromRank, toRank := from.Rank(), to.Rank()
		diff := toRank - fromRank
		if diff == 2 || diff == -2 {
			p.EnPassant = SquareBB(Square((int(from) + int(to)) / 2))
		}
	}

	p.WhiteToMove = !p.WhiteToMove
	p.legalMoves = p.computeLegalMoves()
}

// applyCastlingRookMove displaces the correct-color rook when m is a
// castling move (king moving from its home square to one of the two
// castling destinations); a no-op for ordinary one-square king moves.
func (p *Position) applyCastlingRookMove(mover Color, from, to Square) {
	if mover == White && from == whiteKingHome {
		switch to {
		case whiteKingDestK:
			p.removePiece(White, Rook, whiteRookHomeK)
			p.setPiece(White, Rook, whiteRookDestK)
		case whiteKingDestQ:
			p.removePiece(White, Rook, whiteRookHomeQ)
			p.setPiece(White, Rook, whiteRookDestQ)
		}
		return
	}
	if mover == Black && from == blackKingHome {
		switch to {
		case blackKingDestK:
			p.removePiece(Black, Rook, blackRookHomeK)
			p.setPiece(Black, Rook, blackRookDestK)
		case blackKingDestQ:
			p.removePiece(Black, Rook, blackRookHomeQ)
			p.setPiece(Black, Rook, blackRookDestQ)
		}
	}
}
