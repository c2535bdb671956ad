package eval_test

import (
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/andrewharabor/simplychess/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	assert.EqualValues(t, 0, eval.Evaluate(board.Initial()))
}

func TestEvaluateIsAntiSymmetricWithoutMopUp(t *testing.T) {
	// A position with equal minor material on both sides so the endgame
	// score -- and therefore the mop-up bonus -- stays at zero, leaving
	// only the anti-symmetric material+PST+tropism term (spec invariant 5).
	pos, _, err := fen.Decode("4k3/4n3/8/8/8/8/4N3/4K3 w - - 0 1")
	assert.NoError(t, err)

	assert.Equal(t, eval.Evaluate(pos), -eval.Evaluate(pos.Rotate()))
}

func TestEvaluatePrefersExtraMaterial(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)

	assert.Greater(t, eval.Evaluate(pos), board.Score(0))
}

func TestEvaluateMovePawnPushTowardPromotionScoresPositive(t *testing.T) {
	pos, _, err := fen.Decode("4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	from, err := board.ParseSquare("e5")
	assert.NoError(t, err)
	to, err := board.ParseSquare("e6")
	assert.NoError(t, err)

	m := findMove(t, pos, from, to)
	assert.Greater(t, eval.EvaluateMove(pos, m), board.Score(0))
}

func findMove(t *testing.T, pos *board.Position, from, to board.Square) board.Move {
	t.Helper()
	for _, m := range pos.Generate() {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no generated move %s-%s", from, to)
	return board.Move{}
}
