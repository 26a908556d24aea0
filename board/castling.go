package board

// CastlingRights tracks which castling moves each side still has the right
// to make, independent of whether the path is currently clear or safe.
// A right expires the moment the king or the corresponding rook leaves its
// home square, including by being captured there.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// AllCastlingRights is the full set, as parsed from the starting position.
const AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside

// Has reports whether r grants the given right.
func (r CastlingRights) Has(right CastlingRights) bool {
	return r&right != 0
}

// castlingHome squares, expressed in conventional file/rank terms so they
// read off the same regardless of the underlying index direction.
var (
	whiteKingHome  = ParseSquareMust("e1")
	whiteRookHomeK = ParseSquareMust("h1")
	whiteRookHomeQ = ParseSquareMust("a1")
	whiteKingDestK = ParseSquareMust("g1")
	whiteKingDestQ = ParseSquareMust("c1")
	whiteRookDestK = ParseSquareMust("f1")
	whiteRookDestQ = ParseSquareMust("d1")

	blackKingHome  = ParseSquareMust("e8")
	blackRookHomeK = ParseSquareMust("h8")
	blackRookHomeQ = ParseSquareMust("a8")
	blackKingDestK = ParseSquareMust("g8")
	blackKingDestQ = ParseSquareMust("c8")
	blackRookDestK = ParseSquareMust("f8")
	blackRookDestQ = ParseSquareMust("d8")

	whiteQueensideEmpty = SquareBB(ParseSquareMust("b1")) | SquareBB(whiteKingDestQ) | SquareBB(whiteRookDestQ)
	blackQueensideEmpty = SquareBB(ParseSquareMust("b8")) | SquareBB(blackKingDestQ) | SquareBB(blackRookDestQ)

	whiteKingsideEmpty = SquareBB(whiteRookDestK) | SquareBB(whiteKingDestK)
	blackKingsideEmpty = SquareBB(blackRookDestK) | SquareBB(blackKingDestK)
)

// ParseSquareMust is ParseSquare without the error return, for the fixed
// home-square constants above where the input is always valid.
func ParseSquareMust(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// rightsLostBySquare returns the castling right, if any, that's forfeited
// the moment a piece leaves (or is captured on) sq.
func rightsLostBySquare(sq Square) CastlingRights {
	switch sq {
	case whiteKingHome:
		return WhiteKingside | WhiteQueenside
	case whiteRookHomeK:
		return WhiteKingside
	case whiteRookHomeQ:
		return WhiteQueenside
	case blackKingHome:
		return BlackKingside | BlackQueenside
	case blackRookHomeK:
		return BlackKingside
	case blackRookHomeQ:
		return BlackQueenside
	default:
		return 0
	}
}
