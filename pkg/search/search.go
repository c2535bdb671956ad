// Package search implements fail-hard alpha-beta negamax with quiescence
// extension, iterative deepening, transposition-table caching, and an
// opening-book short-circuit. It generalizes the single nega_max/quiesce/
// iteratively_deepen trio of the reference engine this module is built
// from into a Searcher, replacing the teacher's pluggable, concurrently
// launched Search/Eval interfaces (built to support pondering and multiple
// alternate engines) with the single cooperative loop spec.md mandates.
package search

import (
	"context"
	"time"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/zobrist"
	"github.com/andrewharabor/simplychess/pkg/eval"
	"github.com/andrewharabor/simplychess/pkg/tt"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// deltaMargin is the safety margin quiescence search gives a losing capture,
// to account for positional compensation the static eval can't see.
const deltaMargin board.Score = 200

// Searcher runs alpha-beta search against a shared transposition table,
// tracking the node count and wall-clock budget for one search call. It is
// not safe for concurrent use: spec.md's single-threaded cooperative model
// means exactly one goroutine ever drives a Searcher.
type Searcher struct {
	TT *tt.Table

	Nodes     int
	StartTime time.Time
	TimeLimit time.Duration
	Timeout   bool
}

// New returns a Searcher backed by table.
func New(table *tt.Table) *Searcher {
	return &Searcher{TT: table}
}

// timedOut polls the wall clock -- the only suspension point during search
// (spec.md §5) -- and latches Timeout once it trips, so a caller several
// frames up the recursion still sees it. It also checks ctx for
// cancellation, matching the contextx.IsCancelled guard herohde/morlock's
// alpha-beta search checks at every recursion step; spec.md exposes no UCI `stop` command, so
// in practice ctx is never canceled by this module's own callers, but the
// check keeps the search's behavior under an externally canceled ctx the
// same as under a timeout, for any caller embedding this package that does
// wire up cancellation.
func (s *Searcher) timedOut(ctx context.Context) bool {
	if s.Timeout {
		return true
	}
	if time.Since(s.StartTime) > s.TimeLimit || contextx.IsCancelled(ctx) {
		s.Timeout = true
	}
	return s.Timeout
}

// inCheck reports whether pos's own mover currently has its king attacked,
// independent of any in-flight castling. It rotates pos to bring the
// mover's king into view as the lowercase king LeftInCheck looks for, and
// clears KingPassant first since any leftover value belongs to whatever
// move produced pos, not to this static query.
func inCheck(pos *board.Position) bool {
	np := pos.Rotate()
	np.KingPassant = board.NoSquare
	return np.LeftInCheck()
}

// Quiesce performs a fail-hard quiescence search: it extends the line with
// captures only, until the position is quiet, applying delta pruning to
// skip captures that can't plausibly close the gap to alpha.
func (s *Searcher) Quiesce(ctx context.Context, pos *board.Position, alpha, beta board.Score) board.Score {
	if s.timedOut(ctx) {
		return 0
	}
	s.Nodes++

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return standPat
	}
	if alpha < standPat {
		alpha = standPat
	}

	for _, m := range pos.Generate() {
		if !m.Capture.IsBlack() {
			continue
		}

		gain := standPat + eval.EndgameValue[m.Capture.Upper()]
		if !m.Promotion.IsEmpty() {
			gain += eval.EndgameValue[m.Promotion]
		}
		if gain+deltaMargin < alpha {
			continue
		}

		next := pos.Make(m).Rotate()
		if next.LeftInCheck() {
			continue
		}

		score := -s.Quiesce(ctx, next, -beta, -alpha)
		if s.Timeout {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// NegaMax performs a fail-hard negamax search with alpha-beta pruning,
// returning the best score and move for pos. depth counts plies remaining;
// maxDepth is the depth this iteration started at, needed to keep mate
// scores comparable across the recursion. color is the absolute side to
// move: it has no bearing on move generation (pos is always already in the
// mover's own frame) and is used only to key the transposition table, the
// same key the hasher and opening book use.
func (s *Searcher) NegaMax(ctx context.Context, pos *board.Position, depth, maxDepth int, alpha, beta board.Score, color board.Color) (board.Score, board.Move) {
	if s.timedOut(ctx) {
		return 0, board.NoMove
	}
	if depth == 0 {
		return s.Quiesce(ctx, pos, alpha, beta), board.NoMove
	}

	key := zobrist.Hash(pos, color)
	entry, found := s.TT.Get(key)
	if found && (entry.Depth >= depth || entry.Score >= board.CheckmateLower || entry.Score <= -board.CheckmateLower) {
		return entry.Score, entry.Move
	}

	s.Nodes++
	priority := evalPriority(pos)
	if found && !entry.Move.IsZero() {
		priority = board.First(entry.Move, priority)
	}
	list := board.NewMoveList(pos.Generate(), priority)

	var bestMove board.Move
	legal := 0
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		next := pos.Make(m).Rotate()
		if next.LeftInCheck() {
			continue
		}
		legal++

		score, _ := s.NegaMax(ctx, next, depth-1, maxDepth, -beta, -alpha, color.Opponent())
		score = -score
		if s.Timeout {
			return 0, board.NoMove
		}

		if score >= beta {
			return beta, bestMove
		}
		if score > alpha {
			alpha = score
			bestMove = m
		}
	}

	if legal == 0 {
		if inCheck(pos) {
			return -board.CheckmateLower + board.Score(maxDepth-depth), board.NoMove
		}
		return 0, board.NoMove
	}

	s.TT.Store(key, tt.Entry{Move: bestMove, Depth: depth, Score: alpha})
	return alpha, bestMove
}

// evalPriority ranks moves for ordering purposes by eval.EvaluateMove,
// highest first, the same way the reference engine sorts its move list
// before searching it. A transposition table hit is layered on top via
// board.First so the remembered best move is always tried first regardless
// of its eval score.
func evalPriority(pos *board.Position) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		return board.MovePriority(eval.EvaluateMove(pos, m))
	}
}
