package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/andrewharabor/simplychess/pkg/search"
	"github.com/andrewharabor/simplychess/pkg/tt"
	"github.com/stretchr/testify/require"
)

func newSearcher() *search.Searcher {
	return search.New(tt.New())
}

func TestIterativeDeepenPicksALegalOpeningMove(t *testing.T) {
	pos := board.Initial()
	s := newSearcher()
	s.TimeLimit = time.Second

	outcome := s.IterativeDeepen(context.Background(), pos, board.White, 1, nil, nil)
	require.False(t, outcome.FromBook)
	require.False(t, outcome.Move.IsZero())

	legal := false
	for _, m := range pos.Generate() {
		if m == outcome.Move {
			legal = true
			break
		}
	}
	require.True(t, legal, "bestmove %v is not among the 20 legal opening moves", outcome.Move)
}

func TestIterativeDeepenKeepsThePawn(t *testing.T) {
	pos, color, err := fen.Decode("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	s := newSearcher()
	s.TimeLimit = 5 * time.Second

	outcome := s.IterativeDeepen(context.Background(), pos, color, 4, nil, nil)
	require.False(t, outcome.FromBook)

	e2, _ := board.ParseSquare("e2")
	e3, _ := board.ParseSquare("e3")
	e4, _ := board.ParseSquare("e4")
	require.Equal(t, e2, outcome.Move.From)
	require.Contains(t, []board.Square{e3, e4}, outcome.Move.To)
}

func TestIterativeDeepenFindsBackRankMate(t *testing.T) {
	pos, color, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := newSearcher()
	s.TimeLimit = 20 * time.Second

	var lastScore board.Score
	outcome := s.IterativeDeepen(context.Background(), pos, color, 6, nil, func(depth int, score board.Score, nodes int, _ time.Duration, pv []board.Move) {
		lastScore = score
	})

	a1, _ := board.ParseSquare("a1")
	a8, _ := board.ParseSquare("a8")
	require.Equal(t, a1, outcome.Move.From)
	require.Equal(t, a8, outcome.Move.To)
	require.GreaterOrEqual(t, lastScore, board.CheckmateLower-6)
}
