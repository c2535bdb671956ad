package zobrist_test

import (
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/andrewharabor/simplychess/pkg/board/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashStartingPositionMatchesPolyglot(t *testing.T) {
	pos, color, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, uint64(0x463B96181691FC9C), zobrist.Hash(pos, color))
}

func TestHashWithAsymmetricCastlingRights(t *testing.T) {
	pos, color, err := fen.Decode("4k2r/6r1/8/8/8/8/3R4/R3K3 w Qk - 0 1")
	require.NoError(t, err)

	assert.Equal(t, uint64(0x3C8123EA7B067637), zobrist.Hash(pos, color))
}

func TestHashFoldsInCapturableEnPassant(t *testing.T) {
	pos, color, err := fen.Decode("rnbqkbnr/p1pppppp/8/8/PpP4P/8/1P1PPPP1/RNBQKBNR b KQkq c3 0 3")
	require.NoError(t, err)

	assert.Equal(t, uint64(0x00FDD303C946BDD9), zobrist.Hash(pos, color))
}
