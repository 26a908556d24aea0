package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePosition parses a six-field space-separated position string (piece
// placement, side to move, castling rights, en passant target square,
// halfmove clock, fullmove number) into a Position. Fields 3 and 4 (castling
// rights, en passant target) are retained rather than discarded, per
// spec.md §9's "(b)" resolution; the halfmove and fullmove fields are
// accepted but not read or stored.
//
// Trailing fields beyond piece placement and side to move are optional —
// a parser that only reads those two fields can still produce a usable
// (if castling/en-passant-blind) position, matching spec.md §6's leniency.
func ParsePosition(text string) (*Position, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil, fmt.Errorf("board: malformed position string: %q", text)
	}

	p := &Position{}
	if err := parsePiecePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.WhiteToMove = true
	case "b":
		p.WhiteToMove = false
	default:
		return nil, fmt.Errorf("board: malformed side to move: %q", fields[1])
	}

	if len(fields) > 2 {
		p.Castling = parseCastlingRights(fields[2])
	}

	if len(fields) > 3 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: malformed en passant field: %q", fields[3])
		}
		p.EnPassant = SquareBB(sq)
	}

	p.legalMoves = p.computeLegalMoves()
	return p, nil
}

func parsePiecePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: piece placement must have 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN ranks run 8 down to 1
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("board: rank overflow in %q", rankStr)
			}
			piece := pieceFromChar(byte(c))
			if piece.IsNone() {
				return fmt.Errorf("board: invalid piece character %q", c)
			}
			p.setPiece(piece.Color, piece.Type, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("board: rank %q does not cover 8 files", rankStr)
		}
	}
	return nil
}

func parseCastlingRights(field string) CastlingRights {
	var rights CastlingRights
	if field == "-" {
		return rights
	}
	for _, c := range field {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		}
	}
	return rights
}

// ToFEN renders the position back to a six-field position string. The
// halfmove clock and fullmove number are not tracked and are always written
// as "0 1".
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.WhiteToMove {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.Castling.Has(WhiteKingside) {
			sb.WriteByte('K')
		}
		if p.Castling.Has(WhiteQueenside) {
			sb.WriteByte('Q')
		}
		if p.Castling.Has(BlackKingside) {
			sb.WriteByte('k')
		}
		if p.Castling.Has(BlackQueenside) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EnPassant == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EnPassant.LSB().String())
	}

	sb.WriteString(" 0 1")
	return sb.String()
}
