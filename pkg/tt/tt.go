// Package tt is the search's transposition table: a process-wide cache from
// Zobrist hash to the best move, depth, and score found for that position.
// Unlike the lock-free, fixed-size, replacement-policy table the teacher
// engine uses to support concurrent searchers, this table has exactly one
// caller (the single search goroutine spec.md mandates), so it is a plain
// map behind a mutex, with no eviction and no size bound.
package tt

import (
	"sync"

	"github.com/andrewharabor/simplychess/pkg/board"
)

// Entry records what the search learned about a position the last time it
// was visited: the move, the depth the search reached from there, and the
// resulting score.
type Entry struct {
	Move  board.Move
	Depth int
	Score board.Score
}

// Table is a hash-keyed cache of Entry, safe for concurrent use though the
// search only ever calls it from one goroutine at a time.
type Table struct {
	mu      sync.Mutex
	entries map[uint64]Entry
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[uint64]Entry)}
}

// Get returns the entry stored for key, if any.
func (t *Table) Get(key uint64) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[key]
	return e, ok
}

// Store records e for key. A zero move (no best move found, e.g. no move
// raised alpha at that node) is never stored, matching the
// reference engine's "store in TT when a best move was found" rule.
func (t *Table) Store(key uint64, e Entry) {
	if e.Move.IsZero() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = e
}

// Len reports how many positions are currently cached.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
