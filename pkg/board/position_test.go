package board_test

import (
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestInitialPositionMoveCount(t *testing.T) {
	pos := board.Initial()
	moves := pos.Generate()
	assert.Equal(t, 20, len(moves)) // 16 pawn moves + 4 knight moves
}

func TestRotateIsInvolution(t *testing.T) {
	pos := board.Initial()
	rotated := pos.Rotate().Rotate()
	assert.Equal(t, *pos, *rotated)
}

func TestRotateSwapsCase(t *testing.T) {
	pos := board.Initial()
	rotated := pos.Rotate()
	// The 119-s rotation carries e1 to d8 and e8 to d1.
	assert.Equal(t, board.BlackKing, rotated.Cells[board.NewSquare(3, 7)])
	assert.Equal(t, board.WhiteKing, rotated.Cells[board.NewSquare(3, 0)])
}

func TestMakeDoublePawnPushSetsEnPassant(t *testing.T) {
	pos := board.Initial()
	m, err := board.ParseMove("e2e4")
	assert.NoError(t, err)
	next := pos.Make(m)
	assert.Equal(t, board.WhitePawn, next.Cells[m.To])
	assert.Equal(t, board.Empty, next.Cells[m.From])
	assert.NotEqual(t, board.NoSquare, next.EnPassant)
}

func TestLeftInCheckDetectsExposedKing(t *testing.T) {
	// White king on e1, black rook on e8, and a white pawn on e2 as the
	// king's only shield: capturing away from the e-file with that pawn
	// leaves the king in check.
	pos := board.EmptyPosition()
	pos.Cells[board.NewSquare(4, 0)] = board.WhiteKing
	pos.Cells[board.NewSquare(4, 7)] = board.BlackRook
	pos.Cells[board.NewSquare(4, 1)] = board.WhitePawn
	pos.Cells[board.NewSquare(3, 2)] = board.BlackKnight

	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(3, 2), Capture: board.BlackKnight}
	next := pos.Make(m).Rotate()
	assert.True(t, next.LeftInCheck())
}

func TestLeftInCheckAllowsLegalMove(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Cells[board.NewSquare(0, 0)] = board.WhiteKing
	pos.Cells[board.NewSquare(7, 7)] = board.BlackKing

	m := board.Move{From: board.NewSquare(0, 0), To: board.NewSquare(1, 0)}
	next := pos.Make(m).Rotate()
	assert.False(t, next.LeftInCheck())
}
