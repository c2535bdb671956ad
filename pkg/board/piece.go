package board

// Piece is a single mailbox cell. Empty on-board squares hold Empty, cells
// outside the 8x8 region hold Sentinel, and occupied squares hold the ASCII
// piece letter: uppercase for white, lowercase for black. Keeping the board
// representation char-based (rather than a separate Piece/Color pair) is
// what makes Rotate a plain case swap, matching the PolyGlot/simPLY_chess
// convention the hasher and book reader depend on.
type Piece byte

const (
	Empty    Piece = '.'
	Sentinel Piece = ' '

	WhitePawn   Piece = 'P'
	WhiteKnight Piece = 'N'
	WhiteBishop Piece = 'B'
	WhiteRook   Piece = 'R'
	WhiteQueen  Piece = 'Q'
	WhiteKing   Piece = 'K'

	BlackPawn   Piece = 'p'
	BlackKnight Piece = 'n'
	BlackBishop Piece = 'b'
	BlackRook   Piece = 'r'
	BlackQueen  Piece = 'q'
	BlackKing   Piece = 'k'
)

// ParsePiece parses a single FEN/SAN piece letter.
func ParsePiece(r rune) (Piece, bool) {
	switch Piece(r) {
	case WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing:
		return Piece(r), true
	default:
		return Empty, false
	}
}

// IsEmpty reports whether the cell is an empty on-board square.
func (p Piece) IsEmpty() bool { return p == Empty }

// IsSentinel reports whether the cell lies outside the playable board.
func (p Piece) IsSentinel() bool { return p == Sentinel }

// IsWhite reports whether the cell holds a white piece.
func (p Piece) IsWhite() bool { return p >= 'A' && p <= 'Z' }

// IsBlack reports whether the cell holds a black piece.
func (p Piece) IsBlack() bool { return p >= 'a' && p <= 'z' }

// Color returns the color of the occupying piece. Undefined for empty or sentinel cells.
func (p Piece) Color() Color {
	if p.IsWhite() {
		return White
	}
	return Black
}

// Upper returns the piece letter normalized to white's case, useful for
// piece-type comparisons that should ignore color (e.g. "is this a rook").
func (p Piece) Upper() Piece {
	if p.IsBlack() {
		return p - ('a' - 'A')
	}
	return p
}

// IsType reports whether the cell holds a piece of the given type, regardless of color.
func (p Piece) IsType(t Piece) bool {
	return !p.IsEmpty() && !p.IsSentinel() && p.Upper() == t
}

func (p Piece) String() string {
	return string(p)
}
