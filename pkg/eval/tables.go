package eval

import "github.com/andrewharabor/simplychess/pkg/board"

// Piece values and piece-square tables below are ported verbatim from the
// simPLY_chess reference engine this package generalizes: a 10x12 mailbox
// evaluator that blends midgame and endgame scores. All values are in
// centipawns.

// MidgameValue and EndgameValue give a piece's nominal worth in each phase,
// keyed by the white (uppercase) letter since the board always stores the
// mover's own pieces uppercase.
var (
	MidgameValue = map[board.Piece]board.Score{
		board.WhitePawn:   100,
		board.WhiteKnight: 411,
		board.WhiteBishop: 445,
		board.WhiteRook:   582,
		board.WhiteQueen:  1250,
		board.WhiteKing:   100000,
	}
	EndgameValue = map[board.Piece]board.Score{
		board.WhitePawn:   115,
		board.WhiteKnight: 343,
		board.WhiteBishop: 362,
		board.WhiteRook:   624,
		board.WhiteQueen:  1141,
		board.WhiteKing:   100000,
	}
)

// midgameTropism and endgameTropism scale a piece's king-tropism bonus:
// value/5 in the midgame, value/3 in the endgame.
var (
	midgameTropism = map[board.Piece]board.Score{}
	endgameTropism = map[board.Piece]board.Score{}
)

func init() {
	for p, v := range MidgameValue {
		midgameTropism[p] = v / 5
	}
	for p, v := range EndgameValue {
		endgameTropism[p] = v / 3
	}
}

// MopUpBonus rewards the winning side for driving the losing king to the
// edge of the board once the endgame score is nonzero: twice the endgame
// pawn value.
const MopUpBonus board.Score = 115 * 2

// Game phase weights: knight=1, bishop=1, rook=2, queen=4, total=24,
// rescaled to the 0..256 range by Phase.
const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	totalPhase  = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase
)

// rawMidgamePawnTable, rawEndgamePawnTable, ... are the 8x8 piece-square tables in
// rank8-to-rank1, a-to-h order (row 0 is rank 8), matching how the board
// stores the mover's own pieces: advancing up the board is always toward
// row 0, i.e. toward promotion.
var rawMidgamePawnTable = [64]board.Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	120, 163, 74, 116, 83, 154, 41, -13,
	-7, 9, 32, 38, 79, 68, 30, -24,
	-17, 16, 7, 26, 28, 15, 21, -28,
	-33, -2, -6, 20, 26, 7, 12, -30,
	-32, -5, -5, -12, 4, 4, 40, -15,
	-43, -1, -24, -33, -23, 29, 46, -27,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var rawMidgameKnightTable = [64]board.Score{
	-204, -109, -41, -60, 74, -118, -18, -130,
	-89, -50, 88, 44, 28, 76, 9, -21,
	-57, 73, 45, 79, 102, 157, 89, 54,
	-11, 21, 23, 65, 45, 84, 22, 27,
	-16, 5, 20, 16, 34, 23, 26, -10,
	-28, -11, 15, 12, 23, 21, 30, -20,
	-35, -65, -15, -4, -1, 22, -17, -23,
	-128, -26, -71, -40, -21, -34, -23, -28,
}

var rawMidgameBishopTable = [64]board.Score{
	-35, 5, -100, -45, -30, -51, 9, -10,
	-32, 20, -22, -16, 37, 72, 22, -57,
	-20, 45, 52, 49, 43, 61, 45, -2,
	-5, 6, 23, 61, 45, 45, 9, -2,
	-7, 16, 16, 32, 41, 15, 12, 5,
	0, 18, 18, 18, 17, 33, 22, 12,
	5, 18, 20, 0, 9, 26, 40, 1,
	-40, -4, -17, -26, -16, -15, -48, -26,
}

var rawMidgameRookTable = [64]board.Score{
	39, 51, 39, 62, 77, 11, 38, 52,
	33, 39, 71, 76, 98, 82, 32, 54,
	-6, 23, 32, 44, 21, 55, 74, 20,
	-29, -13, 9, 32, 29, 43, -10, -24,
	-44, -32, -15, -1, 11, -9, 7, -28,
	-55, -30, -20, -21, 4, 0, -6, -40,
	-54, -20, -24, -11, -1, 13, -7, -87,
	-23, -16, 1, 21, 20, 9, -45, -32,
}

var rawMidgameQueenTable = [64]board.Score{
	-34, 0, 35, 15, 72, 54, 52, 55,
	-29, -48, -6, 1, -20, 70, 34, 66,
	-16, -21, 9, 10, 35, 68, 57, 70,
	-33, -33, -20, -20, -1, 21, -2, 1,
	-11, -32, -11, -12, -2, -5, 4, -4,
	-17, 2, -13, -2, -6, 2, 17, 6,
	-43, -10, 13, 2, 10, 18, -4, 1,
	-1, -22, -11, 12, -18, -30, -38, -61,
}

var rawMidgameKingTable = [64]board.Score{
	-79, 28, 20, -18, -68, -41, 2, 16,
	35, -1, -24, -9, -10, -5, -46, -35,
	-11, 29, 2, -20, -24, 7, 27, -27,
	-21, -24, -15, -33, -37, -30, -17, -44,
	-60, -1, -33, -48, -56, -54, -40, -62,
	-17, -17, -27, -56, -54, -37, -18, -33,
	1, 9, -10, -78, -52, -20, 11, 10,
	-18, 44, 15, -66, 10, -34, 29, 17,
}

var rawEndgamePawnTable = [64]board.Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	217, 211, 193, 163, 179, 161, 201, 228,
	115, 122, 104, 82, 68, 65, 100, 102,
	39, 29, 16, 6, -2, 5, 21, 21,
	16, 11, -4, -9, -9, -10, 4, -1,
	5, 9, -7, 1, 0, -6, -1, -10,
	16, 10, 10, 12, 16, 0, 2, -9,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var rawEndgameKnightTable = [64]board.Score{
	-71, -46, -16, -34, -38, -33, -77, -121,
	-30, -10, -30, -2, -11, -30, -29, -63,
	-29, -24, 12, 11, -1, -11, -23, -50,
	-21, 4, 27, 27, 27, 13, 10, -22,
	-22, -7, 20, 30, 20, 21, 5, -22,
	-28, -4, -1, 18, 12, -4, -24, -27,
	-51, -24, -12, -6, -2, -24, -28, -54,
	-35, -62, -28, -18, -27, -22, -61, -78,
}

var rawEndgameBishopTable = [64]board.Score{
	-17, -26, -13, -10, -9, -11, -21, -29,
	-10, -5, 9, -15, -4, -16, -5, -17,
	2, -10, 0, -1, -2, 7, 0, 5,
	-4, 11, 15, 11, 17, 12, 4, 2,
	-7, 4, 16, 23, 9, 12, -4, -11,
	-15, -4, 10, 12, 16, 4, -9, -18,
	-17, -22, -9, -1, 5, -11, -18, -33,
	-28, -11, -28, -6, -11, -20, -6, -21,
}

var rawEndgameRookTable = [64]board.Score{
	16, 12, 22, 18, 15, 15, 10, 6,
	13, 16, 16, 13, -4, 4, 10, 4,
	9, 9, 9, 6, 5, -4, -6, -4,
	5, 4, 16, 1, 2, 1, -1, 2,
	4, 6, 10, 5, -6, -7, -10, -13,
	-5, 0, -6, -1, -9, -15, -10, -20,
	-7, -7, 0, 2, -11, -11, -13, -4,
	-11, 2, 4, -1, -6, -16, 5, -24,
}

var rawEndgameQueenTable = [64]board.Score{
	-11, 27, 27, 33, 33, 23, 12, 24,
	-21, 24, 39, 50, 71, 30, 37, 0,
	-24, 7, 11, 60, 57, 43, 23, 11,
	4, 27, 29, 55, 70, 49, 70, 44,
	-22, 34, 23, 57, 38, 41, 48, 28,
	-20, -33, 18, 7, 11, 21, 12, 6,
	-27, -28, -37, -20, -20, -28, -44, -39,
	-40, -34, -27, -52, -6, -39, -24, -50,
}

var rawEndgameKingTable = [64]board.Score{
	-90, -43, -22, -22, -13, 18, 5, -21,
	-15, 21, 17, 21, 21, 46, 28, 13,
	12, 21, 28, 18, 24, 55, 54, 16,
	-10, 27, 29, 33, 32, 40, 32, 4,
	-22, -5, 26, 29, 33, 28, 11, -13,
	-23, -4, 13, 26, 28, 20, 9, -11,
	-33, -13, 5, 16, 17, 5, -6, -21,
	-65, -41, -26, -13, -34, -17, -29, -52,
}
