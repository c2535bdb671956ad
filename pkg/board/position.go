package board

import "strings"

// pieceDirections lists the step offsets tried for each piece type, keyed by
// the white (uppercase) letter since Position always stores the mover's own
// pieces uppercase. Sliding pieces (B, R, Q) repeat a direction until
// blocked; pawns, knights and kings try each direction exactly once.
var pieceDirections = map[Piece][]Square{
	WhitePawn:   {North, North + North, North + West, North + East},
	WhiteKnight: {North + North + East, North + North + West, East + East + North, East + East + South, South + South + East, South + South + West, West + West + South, West + West + North},
	WhiteBishop: {North + East, South + East, South + West, North + West},
	WhiteRook:   {North, East, South, West},
	WhiteQueen:  {North, East, South, West, North + East, South + East, South + West, North + West},
	WhiteKing:   {North, East, South, West, North + East, South + East, South + West, North + West},
}

// promotionPieces lists the pieces a pawn may promote to, in the order the
// search explores them.
var promotionPieces = [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}

// Position is a snapshot of a chess position, always held from the point of
// view of the side to move: the mover's own pieces are uppercase, the
// opponent's are lowercase, and advancing up the board is always North.
// Rotate flips this perspective after a move, which is what lets move
// generation, evaluation and the king-in-check test all assume "I am
// White" unconditionally.
type Position struct {
	Cells [NumCells]Piece

	OwnCastling Castling // the mover's own castling rights
	OppCastling Castling // the opponent's castling rights
	EnPassant   Square   // capture target for the mover's pawns, or NoSquare
	KingPassant Square   // square the king passed through on the last move, if it castled
}

// Initial returns the standard starting position.
func Initial() *Position {
	p := &Position{}
	for i := range p.Cells {
		p.Cells[i] = Sentinel
	}
	rows := [8]string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	for r, row := range rows {
		base := int(A8) + r*10
		for file, ch := range row {
			p.Cells[base+file] = Piece(ch)
		}
	}
	p.OwnCastling = FullCastling
	p.OppCastling = FullCastling
	return p
}

// EmptyPosition returns a position with no pieces and no rights set, used as
// a starting point by FEN loading.
func EmptyPosition() *Position {
	p := &Position{}
	for i := range p.Cells {
		p.Cells[i] = Sentinel
	}
	for r := 0; r < 8; r++ {
		base := int(A8) + r*10
		for file := 0; file < 8; file++ {
			p.Cells[base+file] = Empty
		}
	}
	return p
}

// Clone returns a deep copy.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// find returns the first cell holding the given piece, or NoSquare if absent.
func (p *Position) find(piece Piece) Square {
	for s := Square(0); s < NumCells; s++ {
		if p.Cells[s] == piece {
			return s
		}
	}
	return NoSquare
}

// OwnKingSquare returns the mover's king cell, or NoSquare if somehow missing.
func (p *Position) OwnKingSquare() Square {
	return p.find(WhiteKing)
}

// OppKingSquare returns the opponent's king cell, or NoSquare if somehow missing.
func (p *Position) OppKingSquare() Square {
	return p.find(BlackKing)
}

// Valid reports whether p is sane enough to search: both kings must be on
// the board, and a side may only claim a castling right if its rook is
// actually standing on the corresponding home cell. The opponent's rights
// are checked by rotating, so the check always consults A1/H1 -- the same
// cells Generate and Make already treat as the castling anchors -- rather
// than re-deriving which absolute square they correspond to.
func (p *Position) Valid() bool {
	if p.OwnKingSquare() == NoSquare || p.OppKingSquare() == NoSquare {
		return false
	}
	if !p.OwnCastling.consistentWith(p.Cells[A1], p.Cells[H1]) {
		return false
	}
	opp := p.Rotate()
	return opp.OwnCastling.consistentWith(opp.Cells[A1], opp.Cells[H1])
}

// Generate returns every pseudo-legal move for the side to move: it respects
// blocking pieces, capture-only/no-capture pawn rules, en passant and
// castling-rights bookkeeping, but never checks whether the move leaves the
// mover's own king in check. Moves are returned in generation order;
// ordering for search is layered on top via NewMoveList and a priority
// function (see package eval), not here, to keep generation free of any
// dependency on evaluation.
func (p *Position) Generate() []Move {
	return p.generate(p.EnPassant)
}

func (p *Position) generate(enPassant Square) []Move {
	var moves []Move
	for start := Square(0); start < NumCells; start++ {
		piece := p.Cells[start]
		if !piece.IsWhite() {
			continue
		}
		for _, dir := range pieceDirections[piece] {
			for end := start + dir; ; end += dir {
				captured := p.Cells[end]
				if captured.IsSentinel() || captured.IsWhite() {
					break
				}

				if piece == WhitePawn {
					if (dir == North || dir == North+North) && captured != Empty {
						break
					}
					if dir == North+North && (start < A1+North || p.Cells[start+North] != Empty) {
						break
					}
					if (dir == North+West || dir == North+East) && captured == Empty && end+South != enPassant {
						break
					}
					if end >= A8 && end <= H8 {
						for _, promo := range promotionPieces {
							moves = append(moves, Move{From: start, To: end, Capture: captured, Promotion: promo})
						}
						break
					}
				}

				moves = append(moves, Move{From: start, To: end, Capture: captured})
				if piece == WhitePawn || piece == WhiteKnight || piece == WhiteKing || captured.IsBlack() {
					break
				}

				if start == A1 && p.Cells[end+East] == WhiteKing && p.OwnCastling[Queenside] {
					moves = append(moves, Move{From: end + East, To: end + West, Capture: captured})
				}
				if start == H1 && p.Cells[end+West] == WhiteKing && p.OwnCastling[Kingside] {
					moves = append(moves, Move{From: end + West, To: end + East, Capture: captured})
				}
			}
		}
	}
	return moves
}

// Make applies a pseudo-legal move and returns the resulting position. It
// does not rotate the board and does not check legality; callers rotate and
// then consult LeftInCheck to discard illegal moves, mirroring the
// make-then-rotate-then-test pattern the search uses throughout.
func (p *Position) Make(m Move) *Position {
	np := p.Clone()
	piece := np.Cells[m.From]

	np.KingPassant = NoSquare
	np.Cells[m.From] = Empty
	np.Cells[m.To] = piece

	if m.From == A1 {
		np.OwnCastling[Queenside] = false
	}
	if m.From == H1 {
		np.OwnCastling[Kingside] = false
	}
	if m.To == A8 {
		np.OppCastling[Queenside] = false
	}
	if m.To == H8 {
		np.OppCastling[Kingside] = false
	}

	switch piece {
	case WhiteKing:
		np.OwnCastling = Castling{false, false}
		if m.From-m.To == 2 { // queenside castle
			kp := (m.From + m.To) / 2
			np.KingPassant = kp
			np.Cells[A1], np.Cells[kp] = np.Cells[kp], np.Cells[A1]
		}
		if m.To-m.From == 2 { // kingside castle
			kp := (m.From + m.To) / 2
			np.KingPassant = kp
			np.Cells[H1], np.Cells[kp] = np.Cells[kp], np.Cells[H1]
		}
	case WhitePawn:
		if m.To == p.EnPassant {
			np.Cells[m.To+South] = Empty
		}
		if m.To >= A8 && m.To <= H8 {
			np.Cells[m.To] = m.Promotion
		}
		if m.To-m.From == North+North {
			np.EnPassant = m.To + South
		} else {
			np.EnPassant = NoSquare
		}
	}
	return np
}

func swapCase(p Piece) Piece {
	if p == Empty || p == Sentinel {
		return p
	}
	return p ^ 0x20
}

func rotateSquare(s Square) Square {
	return 119 - s
}

// Rotate flips the board 180 degrees and swaps piece case, turning a
// position seen from the mover's perspective into one seen from the
// opponent's. It is called after every Make so the engine only ever has to
// reason about "my" pieces and "my" directions.
func (p *Position) Rotate() *Position {
	np := &Position{
		OwnCastling: p.OppCastling,
		OppCastling: p.OwnCastling,
		EnPassant:   rotateSquare(p.EnPassant),
		KingPassant: rotateSquare(p.KingPassant),
	}
	for i := Square(0); i < 60; i++ {
		j := 119 - i
		np.Cells[j] = swapCase(p.Cells[i])
		np.Cells[i] = swapCase(p.Cells[j])
	}
	return np
}

// LeftInCheck reports whether the side that just moved left its own king
// attacked. p must be the position immediately after Make followed by
// Rotate: rotation flips perspective, so the king to test is the one now
// shown in lowercase. Castling through or out of check is caught via
// KingPassant and the king's square before it castled.
func (p *Position) LeftInCheck() bool {
	kingSquare := p.find(BlackKing)
	if kingSquare == NoSquare {
		return true
	}

	castled := false
	var originalKingSquare Square
	switch p.KingPassant {
	case 23, 25:
		originalKingSquare, castled = 24, true
	case 24, 26:
		originalKingSquare, castled = 25, true
	}

	for _, m := range p.generate(NoSquare) {
		if m.To == kingSquare || m.To == p.KingPassant {
			return true
		}
		if castled && m.To == originalKingSquare {
			return true
		}
	}
	return false
}

func (p *Position) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sb.WriteRune(rune(p.Cells[int(A8)+rank*10+file]))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
