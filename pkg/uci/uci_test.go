package uci_test

import (
	"context"
	"strings"
	"testing"

	"github.com/andrewharabor/simplychess/pkg/engine"
	"github.com/andrewharabor/simplychess/pkg/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds commands (one per line) to a fresh Driver and returns everything
// it wrote, split into lines.
func run(t *testing.T, commands string) []string {
	t.Helper()
	ctx := context.Background()
	e := engine.New(ctx, "simplychess", "andrewharabor")

	var out strings.Builder
	d := uci.NewDriver(e, strings.NewReader(commands), &out)
	require.NoError(t, d.Run(ctx))

	if out.Len() == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestUCICommandRepliesWithIdentityThenUCIOK(t *testing.T) {
	lines := run(t, "uci\nquit\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id name "))
	assert.True(t, strings.HasPrefix(lines[1], "id author "))
	assert.Equal(t, "uciok", lines[2])
}

func TestGoOnTheStartingPositionReturnsALegalBestmove(t *testing.T) {
	// One info line for the completed depth, then the bestmove.
	lines := run(t, "position startpos\ngo depth 1\nquit\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "bestmove "))
	assert.NotEqual(t, "bestmove (none)", lines[1])
}

func TestEvalAfterASymmetricOpeningIsZero(t *testing.T) {
	lines := run(t, "position startpos moves e2e4 e7e5\neval\nquit\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "static eval: +0", lines[0])
}

func TestGoOnAPositionMissingAKingProducesNoOutputAtAll(t *testing.T) {
	lines := run(t, "position fen 8/8/8/8/8/8/8/8 w - - 0 1\ngo depth 1\nquit\n")
	assert.Nil(t, lines)
}
