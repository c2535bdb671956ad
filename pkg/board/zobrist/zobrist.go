// Package zobrist computes PolyGlot-compatible Zobrist hashes for a
// board.Position. The hash is the same key PolyGlot opening books are
// indexed by, so every rule below — which table offsets to XOR, when to
// include en passant, how castling rights map to bits — must match the
// PolyGlot specification exactly, not just produce a self-consistent hash.
package zobrist

import "github.com/andrewharabor/simplychess/pkg/board"

// pieceEncoding maps a piece letter to its PolyGlot piece index, used as
// `64*encoding + 8*rank + file` into Hashes.
var pieceEncoding = map[board.Piece]int{
	board.BlackPawn:   0,
	board.WhitePawn:   1,
	board.BlackKnight: 2,
	board.WhiteKnight: 3,
	board.BlackBishop: 4,
	board.WhiteBishop: 5,
	board.BlackRook:   6,
	board.WhiteRook:   7,
	board.BlackQueen:  8,
	board.WhiteQueen:  9,
	board.BlackKing:   10,
	board.WhiteKing:   11,
}

// Castling right offsets into Hashes, per the PolyGlot convention: the table
// entries at 768..771 are, in order, white kingside, white queenside, black
// kingside, black queenside.
const (
	offsetPieces   = 0
	offsetCastling = 768
	offsetEnPassant = 772
	offsetTurn      = 780
)

// Hash computes the PolyGlot Zobrist key for pos as seen by color: the
// position must be hashed from White's point of view, so a black-to-move
// position is rotated first. This matches zobrist_hash in the reference
// engine this package is modeled on, including the quirk that en passant is
// only folded in when a friendly pawn could actually make the capture.
func Hash(pos *board.Position, color board.Color) uint64 {
	p := pos
	var turnHash uint64
	if color == board.Black {
		p = pos.Rotate()
	} else {
		turnHash = Hashes[offsetTurn]
	}

	var pieceHash uint64
	for i := board.Square(0); i < board.NumCells; i++ {
		piece := p.Cells[i]
		if piece.IsSentinel() || piece.IsEmpty() {
			continue
		}
		row := 9 - int(i)/10
		file := int(i)%10 - 1
		pieceHash ^= Hashes[offsetPieces+64*pieceEncoding[piece]+8*row+file]
	}

	var castlingHash uint64
	if p.OwnCastling[board.Queenside] {
		castlingHash ^= Hashes[offsetCastling+1]
	}
	if p.OwnCastling[board.Kingside] {
		castlingHash ^= Hashes[offsetCastling+0]
	}
	if p.OppCastling[board.Queenside] {
		castlingHash ^= Hashes[offsetCastling+3]
	}
	if p.OppCastling[board.Kingside] {
		castlingHash ^= Hashes[offsetCastling+2]
	}

	var epHash uint64
	ep := p.EnPassant
	if ep != 0 && ep != 119 {
		switch {
		case ep >= 41 && ep <= 48: // white pawn could capture onto this file
			if p.Cells[ep+board.South+board.East] == board.WhitePawn || p.Cells[ep+board.South+board.West] == board.WhitePawn {
				epHash = Hashes[offsetEnPassant+int(ep)%10-1]
			}
		case ep >= 71 && ep <= 78: // black pawn could capture onto this file
			if p.Cells[ep+board.North+board.East] == board.BlackPawn || p.Cells[ep+board.North+board.West] == board.BlackPawn {
				epHash = Hashes[offsetEnPassant+int(ep)%10-1]
			}
		}
	}

	return pieceHash ^ castlingHash ^ epHash ^ turnHash
}
