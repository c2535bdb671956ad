package fen_test

import (
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	}

	for _, tt := range tests {
		p, c, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(p, c))
	}
}

func TestDecodeInitialSideToMove(t *testing.T) {
	p, c, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.WhiteKing, p.Cells[board.NewSquare(4, 0)])
}

func TestDecodeRejectsMalformedFEN(t *testing.T) {
	_, _, err := fen.Decode("not a fen")
	assert.Error(t, err)

	_, _, err = fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestDecodeEnPassantSquare(t *testing.T) {
	p, _, err := fen.Decode("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(3, 5), p.EnPassant)
}
