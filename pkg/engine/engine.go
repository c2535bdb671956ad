// Package engine ties the board, evaluator, search and opening book
// together into the mutable state a UCI driver drives: the current
// position, the side to move, the shared transposition table, and the
// loaded opening books. It generalizes herohde/morlock's pkg/engine.Engine
// (same ownership of "one position + one search at a time" behind a mutex)
// to the single-threaded, book-aware, iterative-deepening engine spec.md
// describes, dropping the teacher's concurrent Analyze/Halt handle in favor
// of a synchronous Go that blocks until bestmove is known -- spec.md's
// scheduling model has no pondering and no `stop`, so there is nothing for
// a handle to cancel.
package engine

import (
	"context"
	"sync"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/andrewharabor/simplychess/pkg/book"
	"github.com/andrewharabor/simplychess/pkg/search"
	"github.com/andrewharabor/simplychess/pkg/tt"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(3, 3, 0)

// defaultDepth is the iterative-deepening cap used when neither the engine
// was constructed with a depth option nor a `go` command specifies one.
const defaultDepth = 5

// Options configures an Engine at construction time.
type Options struct {
	// Depth is the default iterative-deepening cap, overridden per `go` by
	// an explicit `depth N`.
	Depth int
	// BooksDir is the directory Init searches for main1.bin..main7.bin.
	// Empty means no opening book is ever consulted.
	BooksDir string
}

// Option is an engine creation option.
type Option func(*Engine)

// WithDepth sets the default depth cap.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		e.opts.Depth = depth
	}
}

// WithBooksDir sets the opening-book directory.
func WithBooksDir(dir string) Option {
	return func(e *Engine) {
		e.opts.BooksDir = dir
	}
}

// Engine encapsulates position state, the transposition table, opening
// books and the search, behind a mutex: exactly one UCI command is ever in
// flight at a time (spec.md §5's single cooperative loop), but the mutex
// keeps Engine safe to use from tests that don't follow that discipline.
type Engine struct {
	name, author string
	opts         Options

	pos   *board.Position
	color board.Color

	tt       *tt.Table
	books    book.Books
	searcher *search.Searcher

	initialized bool
	mu          sync.Mutex
}

// New returns an Engine reset to the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		tt:     tt.New(),
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.opts.Depth <= 0 {
		e.opts.Depth = defaultDepth
	}
	e.searcher = search.New(e.tt)

	if err := e.SetPosition(ctx, fen.Initial, nil); err != nil {
		logw.Errorf(ctx, "Failed to reset to initial position: %v", err)
	}

	logw.Infof(ctx, "Initialized engine: %v, depth=%v, books=%v", e.Name(), e.opts.Depth, e.opts.BooksDir)
	return e
}

// Name returns the engine name and version, for the UCI `id name` line.
func (e *Engine) Name() string {
	return e.name + " " + version.String()
}

// Author returns the UCI `id author` line's value.
func (e *Engine) Author() string {
	return e.author
}

// Init performs the one-time initialization spec.md §4.8 ties to the first
// `isready`: zeroing the search's node counter and loading every available
// opening book. It is idempotent -- later calls are no-ops -- so the UCI
// driver can call it unconditionally on every `isready`.
func (e *Engine) Init(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return
	}
	e.initialized = true
	e.searcher.Nodes = 0

	if e.opts.BooksDir != "" {
		e.books = book.LoadDir(ctx, e.opts.BooksDir)
		logw.Infof(ctx, "Loaded %v opening book(s) from %v", len(e.books), e.opts.BooksDir)
	}
}

// SetPosition resets the engine to fenStr (startpos or a FEN string) and
// then replays moves, long-algebraic absolute (White's-frame) notation,
// exactly the way the reference engine's `position` handler does: each
// move is flipped into the frame of whichever color is actually on move at
// that ply, made, and -- for the opponent's plies -- sandwiched between a
// rotate-out and a rotate-back so the position stays in the original
// root color's frame throughout the replay. A final rotate brings the
// position into the frame of whoever is to move after the last move.
// Malformed move tokens are skipped in place, per spec.md §7.
func (e *Engine) SetPosition(ctx context.Context, fenStr string, moves []string) error {
	if fenStr == "startpos" {
		fenStr = fen.Initial
	}
	pos, color, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}

	ply := 0
	for _, token := range moves {
		m, err := board.ParseMove(token)
		if err != nil {
			logw.Debugf(ctx, "Skipping malformed move %q in position command", token)
			continue
		}

		mover := color
		if ply%2 == 1 {
			mover = color.Opponent()
		}
		rel := m.Flip(mover)

		if ply%2 == 1 {
			pos = pos.Rotate().Make(rel).Rotate()
		} else {
			pos = pos.Make(rel)
		}
		ply++
	}
	if ply%2 == 1 {
		pos = pos.Rotate()
		color = color.Opponent()
	}
	pos.KingPassant = board.NoSquare

	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos = pos
	e.color = color
	return nil
}

// Flip swaps the side to move without changing who actually owns which
// pieces: it rotates the stored position and toggles color, the same
// operation the UCI `flip` command exposes directly.
func (e *Engine) Flip(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pos == nil {
		return
	}
	e.pos = e.pos.Rotate()
	e.color = e.color.Opponent()
}
