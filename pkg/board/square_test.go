package board_test

import (
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquareCorners(t *testing.T) {
	assert.Equal(t, board.A8, board.NewSquare(0, 7))
	assert.Equal(t, board.H8, board.NewSquare(7, 7))
	assert.Equal(t, board.A1, board.NewSquare(0, 0))
	assert.Equal(t, board.H1, board.NewSquare(7, 0))
}

func TestSquareOnBoard(t *testing.T) {
	assert.True(t, board.A1.IsOnBoard())
	assert.True(t, board.H8.IsOnBoard())
	assert.False(t, board.Square(0).IsOnBoard())
	assert.False(t, board.Square(119).IsOnBoard())
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquare("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 3), sq)
	assert.Equal(t, "e4", sq.String())

	_, err = board.ParseSquare("z9")
	assert.Error(t, err)
}

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, board.ManhattanDistance(board.A1, board.A1))
	assert.Equal(t, 14, board.ManhattanDistance(board.A1, board.H8))
}
