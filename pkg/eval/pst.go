package eval

import "github.com/andrewharabor/simplychess/pkg/board"

// pad8x8 embeds a rank8-to-rank1 8x8 table into the 10x12 mailbox frame, so
// MidgamePST[piece][square] can be indexed directly by a board.Square
// without a bounds check. Sentinel cells are left at the zero value; they
// are never read because Evaluate only visits non-sentinel, non-empty
// cells.
func pad8x8(raw [64]board.Score) [board.NumCells]board.Score {
	var out [board.NumCells]board.Score
	for row := 0; row < 8; row++ {
		base := int(board.A8) + row*10
		for file := 0; file < 8; file++ {
			out[base+file] = raw[row*8+file]
		}
	}
	return out
}

// MidgamePST and EndgamePST hold the padded piece-square tables, keyed by
// the white (uppercase) piece letter. They are built once at package
// initialization -- the idiomatic equivalent of padding them lazily on the
// engine's first "isready", since the tables never change afterward.
var (
	MidgamePST = map[board.Piece][board.NumCells]board.Score{
		board.WhitePawn:   pad8x8(rawMidgamePawnTable),
		board.WhiteKnight: pad8x8(rawMidgameKnightTable),
		board.WhiteBishop: pad8x8(rawMidgameBishopTable),
		board.WhiteRook:   pad8x8(rawMidgameRookTable),
		board.WhiteQueen:  pad8x8(rawMidgameQueenTable),
		board.WhiteKing:   pad8x8(rawMidgameKingTable),
	}
	EndgamePST = map[board.Piece][board.NumCells]board.Score{
		board.WhitePawn:   pad8x8(rawEndgamePawnTable),
		board.WhiteKnight: pad8x8(rawEndgameKnightTable),
		board.WhiteBishop: pad8x8(rawEndgameBishopTable),
		board.WhiteRook:   pad8x8(rawEndgameRookTable),
		board.WhiteQueen:  pad8x8(rawEndgameQueenTable),
		board.WhiteKing:   pad8x8(rawEndgameKingTable),
	}
)

// mirror returns the cell a PST lookup should use for an opponent piece: the
// same file, reflected to the opposite rank. A black knight on b8 is scored
// against the white knight entry for b1. This is a vertical flip only,
// unlike board.Position.Rotate's full point-symmetric rotation.
func mirror(s board.Square) board.Square {
	row := int(s) / 10
	col := int(s) % 10
	return board.Square((11-row)*10 + col)
}
