package engine_test

import (
	"context"
	"testing"

	"github.com/andrewharabor/simplychess/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(context.Background(), "simplychess", "andrewharabor")
}

func TestSetPositionReplaysASingleMoveAndFlipsColorToMove(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetPosition(ctx, "startpos", []string{"e2e4"}))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", e.FEN(ctx))
}

func TestSetPositionReplaysAnOpponentReplyAndRestoresColorToMove(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetPosition(ctx, "startpos", []string{"e2e4", "e7e5"}))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", e.FEN(ctx))
}

func TestSetPositionSkipsAMalformedMoveTokenAndKeepsReplaying(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetPosition(ctx, "startpos", []string{"e2e4", "not-a-move", "e7e5"}))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", e.FEN(ctx))
}

func TestGoOnAnOrdinaryPositionReturnsALegalMove(t *testing.T) {
	e := newEngine(t)

	result := e.Go(context.Background(), engine.GoOptions{Depth: 1}, nil)
	assert.False(t, result.Ignored)
	assert.False(t, result.Move.IsZero())
}

func TestGoIgnoresAPositionMissingAKing(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	require.NoError(t, e.SetPosition(ctx, "8/8/8/8/8/8/8/8 w - - 0 1", nil))

	var lines []string
	result := e.Go(ctx, engine.GoOptions{Depth: 1}, func(line string) { lines = append(lines, line) })

	assert.True(t, result.Ignored)
	assert.True(t, result.Move.IsZero())
	assert.Empty(t, lines)
}

func TestGoIgnoresInconsistentCastlingRights(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	// Both kings present but neither rook is on its home cell, so the
	// claimed KQ rights cannot correspond to the board.
	require.NoError(t, e.SetPosition(ctx, "4k3/8/8/8/8/8/8/4K3 w KQ - 0 1", nil))

	result := e.Go(ctx, engine.GoOptions{Depth: 1}, nil)
	assert.True(t, result.Ignored)
}
