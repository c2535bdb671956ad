package search

import (
	"context"
	"time"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/zobrist"
	"github.com/andrewharabor/simplychess/pkg/book"
	"github.com/seekerror/logw"
)

// Outcome is what IterativeDeepen returns: the move to play, and whether it
// came from the opening book rather than a search.
type Outcome struct {
	Move     board.Move
	FromBook bool
}

// InfoFunc is called once per completed iterative-deepening depth, so the
// UCI driver can print an `info` line without this package depending on
// I/O. pv is the principal variation, in mover-relative squares (the
// caller flips each move's squares per ply before printing them).
type InfoFunc func(depth int, score board.Score, nodes int, elapsed time.Duration, pv []board.Move)

// IterativeDeepen searches pos to maxDepth, deepening one ply at a time and
// calling onDepth after each completed iteration. color is the absolute
// side to move. If books holds an entry for pos, the search is skipped
// entirely and the weighted book pick is returned (spec.md's book
// short-circuit) -- onDepth is never called in that case.
//
// If the time budget expires mid-iteration, that iteration's result is
// discarded and the previous iteration's move is returned instead. The
// frames unwinding from the timeout store nothing in the transposition
// table; entries written by subtrees that finished before the budget ran
// out stay in it.
func (s *Searcher) IterativeDeepen(ctx context.Context, pos *board.Position, color board.Color, maxDepth int, books book.Books, onDepth InfoFunc) Outcome {
	if m, ok := book.WeightedEntry(pos, color, books); ok {
		logw.Debugf(ctx, "Book move for %v: %v", color, m)
		return Outcome{Move: m, FromBook: true}
	}

	s.StartTime = time.Now()
	s.Timeout = false

	var best, previous board.Move
	for depth := 1; depth <= maxDepth; depth++ {
		s.Nodes = 0
		score, move := s.NegaMax(ctx, pos, depth, depth, -board.CheckmateUpper, board.CheckmateUpper, color)
		if s.Timeout {
			s.Timeout = false
			best = previous
			break
		}
		best = move

		logw.Debugf(ctx, "Searched %v to depth=%v: score=%v, nodes=%v, move=%v", color, depth, score, s.Nodes, move)
		if onDepth != nil {
			onDepth(depth, score, s.Nodes, time.Since(s.StartTime), s.PV(pos, color, depth))
		}
		if best.IsZero() {
			break
		}
		previous = best
	}
	return Outcome{Move: best}
}

// PV reconstructs the principal variation for pos by following transposition
// table entries, up to length moves. It stops early if a node has no entry,
// which also bounds recursion if a hash collision were ever to produce a
// cycle.
func (s *Searcher) PV(pos *board.Position, color board.Color, length int) []board.Move {
	if length <= 0 {
		return nil
	}
	entry, ok := s.TT.Get(zobrist.Hash(pos, color))
	if !ok || entry.Move.IsZero() {
		return nil
	}

	next := pos.Make(entry.Move).Rotate()
	return append([]board.Move{entry.Move}, s.PV(next, color.Opponent(), length-1)...)
}
