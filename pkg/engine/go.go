package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/seekerror/logw"
)

// GoOptions carries a `go` command's parameters, after the UCI layer has
// already applied spec.md §6's token defaults (wtime/btime/winc/binc each
// default to 400s/0 when the corresponding token is absent but HasClock is
// set from any clock token being present at all).
type GoOptions struct {
	// Depth caps iterative deepening for this search only; 0 means use the
	// engine's configured default.
	Depth int
	// MoveTime is the `movetime` token's value; 0 means absent.
	MoveTime time.Duration
	// HasClock reports whether any of wtime/btime/winc/binc was given.
	HasClock                bool
	WTime, BTime, WInc, BInc time.Duration
}

// computeTimeLimit implements spec.md §6's exact `go` time policy: an
// explicit movetime wins outright; otherwise a clock token derives a
// per-move budget (1 second flat once the mover is low on time); absent
// both, a flat 10-second default applies.
func computeTimeLimit(color board.Color, opts GoOptions) time.Duration {
	if opts.MoveTime > 0 {
		return opts.MoveTime
	}
	if opts.HasClock {
		myTime, myInc := opts.WTime, opts.WInc
		if color == board.Black {
			myTime, myInc = opts.BTime, opts.BInc
		}
		if myTime <= 60*time.Second {
			return time.Second
		}
		return myTime/40 + myInc
	}
	return 10 * time.Second
}

// Result is what Go returns once a bestmove is known: the move, in
// absolute (White's-frame) long algebraic notation ready to print, and
// whether it came from the opening book. Ignored is set instead when the
// command produced nothing at all.
type Result struct {
	Move     board.Move
	FromBook bool
	// Ignored reports that `go` was silently dropped: no info lines, no
	// bestmove, nothing -- spec.md §7's "invalid position state on go (e.g.
	// no king, inconsistent castling flags). Policy: ignore go, continue".
	Ignored bool
}

// Go runs a search (or opening-book lookup) from the engine's current
// position and returns the move to play. info is called with each
// complete, ready-to-print UCI `info ...` line, once per finished
// iterative-deepening depth; it is never called for a book move, matching
// the reference engine only emitting "info string weighted bookmove" in
// that case (left to the caller -- Go only reports FromBook). If the
// engine has no position set, or the current position fails Position.Valid
// (missing king, castling rights inconsistent with the board), Go returns
// Result{Ignored: true} and runs no search at all: spec.md §7 treats `go`
// against an invalid position as "ignore the command", matching the
// reference engine's bare continue with no response sent.
func (e *Engine) Go(ctx context.Context, opts GoOptions, info func(line string)) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pos == nil || !e.pos.Valid() {
		return Result{Ignored: true}
	}

	depth := opts.Depth
	if depth <= 0 {
		depth = e.opts.Depth
	}
	e.searcher.TimeLimit = computeTimeLimit(e.color, opts)

	color := e.color
	pos := e.pos
	outcome := e.searcher.IterativeDeepen(ctx, pos, color, depth, e.books, func(d int, score board.Score, nodes int, elapsed time.Duration, pv []board.Move) {
		if info == nil {
			return
		}
		info(formatInfoLine(d, score, nodes, elapsed, color, pv))
	})

	logw.Infof(ctx, "bestmove=%v fromBook=%v", outcome.Move, outcome.FromBook)
	return Result{Move: outcome.Move.Flip(color), FromBook: outcome.FromBook}
}

// formatInfoLine renders one iterative-deepening depth's result into a UCI
// `info` line, grounded on the reference engine's iteratively_deepen print:
// the score is always from White's point of view (negated when color is
// Black), and the principal variation's moves are each flipped back to
// absolute notation according to whose turn that ply represents, since pv
// itself is recorded in mover-relative squares.
func formatInfoLine(depth int, score board.Score, nodes int, elapsed time.Duration, color board.Color, pv []board.Move) string {
	white := score
	if color == board.Black {
		white = -score
	}

	var pvStr strings.Builder
	mover := color
	for i, m := range pv {
		if i > 0 {
			pvStr.WriteByte(' ')
		}
		pvStr.WriteString(m.Flip(mover).String())
		mover = mover.Opponent()
	}

	return fmt.Sprintf("info depth %d score cp %d nodes %d time %d pv %s",
		depth, white, nodes, elapsed.Milliseconds(), pvStr.String())
}
