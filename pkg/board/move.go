package board

import "fmt"

// Move is a from/to cell pair along with the piece captured (if any) and the
// piece to promote to (if any). It says nothing about legality: a Move is
// only as trustworthy as whatever generated it. Castling is represented as
// a two-square king move (e1g1, e1c1, ...), and a Move carries no separate
// tag for it — Position.Make recognizes it structurally, the same way the
// mover recognizes a pawn reaching the back rank as a promotion.
type Move struct {
	From, To  Square
	Capture   Piece // piece captured, Empty if none
	Promotion Piece // piece promoted to, Empty if none
}

// NoMove is the sentinel "no move" value, used where the search or the book
// has nothing to offer. It mirrors the all-zero move tuple of the reference
// engine this package is modeled on.
var NoMove = Move{}

// IsZero reports whether m is the NoMove sentinel.
func (m Move) IsZero() bool {
	return m == NoMove
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move carries no capture information; a caller resolves that
// against a Position separately.
func ParseMove(str string) (Move, error) {
	if len(str) < 4 || len(str) > 5 {
		return NoMove, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(str[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid from: %q: %w", str, err)
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid to: %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(str) == 5 {
		promo, ok := ParsePiece(rune(str[4]))
		if !ok {
			return NoMove, fmt.Errorf("invalid promotion: %q", str)
		}
		m.Promotion = promo.Upper()
	}
	return m, nil
}

// Flip reorients m between White's absolute board frame and the mover's
// relative frame: when color is Black the same point-symmetric 119-s
// reflection Position.Rotate applies to a whole board is applied to both of
// m's squares. The capture and promotion fields carry no square information
// and are left untouched. Flip is its own inverse, so the UCI driver uses it
// both to translate a GUI-supplied absolute move into the mover's frame and
// to translate a mover-relative search result back into absolute notation.
func (m Move) Flip(color Color) Move {
	if color != Black {
		return m
	}
	return Move{
		From:      rotateSquare(m.From),
		To:        rotateSquare(m.To),
		Capture:   m.Capture,
		Promotion: m.Promotion,
	}
}

func (m Move) String() string {
	if m.IsZero() {
		return "(none)"
	}
	if !m.Promotion.IsEmpty() {
		promo := m.Promotion
		if promo.IsWhite() {
			promo += 'a' - 'A'
		}
		return fmt.Sprintf("%v%v%v", m.From, m.To, promo)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
