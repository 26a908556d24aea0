package board

import "fmt"

// Move is a single move record: origin and destination squares as
// single-bit bitboards, the moving piece kind, and the promotion kind (or
// NoPieceType if the move isn't a promotion).
//
// Castling and en passant are not flagged explicitly — they're recognized
// structurally where needed (King moving two files, or a Pawn landing on
// the position's en passant target) rather than carried as extra state.
type Move struct {
	From      Bitboard
	To        Bitboard
	Piece     PieceType
	Promotion PieceType
}

// FromSquare and ToSquare recover the single square each field's bit sits on.
func (m Move) FromSquare() Square { return m.From.LSB() }
func (m Move) ToSquare() Square   { return m.To.LSB() }

// promotionChars maps a promotion PieceType to its UCI token letter.
var promotionChars = map[PieceType]byte{
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
}

var promotionFromChar = map[byte]PieceType{
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
}

// String renders the move as a UCI-style long-algebraic token: four
// characters of from/to squares, plus a trailing promotion letter.
func (m Move) String() string {
	s := m.FromSquare().String() + m.ToSquare().String()
	if m.Promotion != NoPieceType {
		s += string(promotionChars[m.Promotion])
	}
	return s
}

// parseMoveToken splits a UCI-style token into its from/to squares and an
// optional promotion piece. It does not validate the move against any
// position — per the surface contract, applying an illegal token is
// undefined behavior, not a parse error.
func parseMoveToken(token string) (from, to Square, promotion PieceType, err error) {
	if len(token) != 4 && len(token) != 5 {
		return 0, 0, NoPieceType, fmt.Errorf("invalid move token: %q", token)
	}
	from, err = ParseSquare(token[0:2])
	if err != nil {
		return 0, 0, NoPieceType, err
	}
	to, err = ParseSquare(token[2:4])
	if err != nil {
		return 0, 0, NoPieceType, err
	}
	promotion = NoPieceType
	if len(token) == 5 {
		pt, ok := promotionFromChar[token[4]]
		if !ok {
			return 0, 0, NoPieceType, fmt.Errorf("invalid promotion letter: %q", token[4:5])
		}
		promotion = pt
	}
	return from, to, promotion, nil
}
