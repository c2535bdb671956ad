package tt_test

import (
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/tt"
	"github.com/stretchr/testify/assert"
)

func TestStoreAndGet(t *testing.T) {
	table := tt.New()
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	entry := tt.Entry{Move: board.Move{From: e2, To: e4}, Depth: 3, Score: 42}

	table.Store(1234, entry)

	got, ok := table.Get(1234)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, table.Len())
}

func TestStoreIgnoresZeroMove(t *testing.T) {
	table := tt.New()
	table.Store(1234, tt.Entry{})

	_, ok := table.Get(1234)
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}

func TestGetMissingKey(t *testing.T) {
	table := tt.New()
	_, ok := table.Get(999)
	assert.False(t, ok)
}
