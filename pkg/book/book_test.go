package book_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startPosHash is the PolyGlot key for the standard starting position,
// white to move (spec scenario: Zobrist hash against the starting FEN).
const startPosHash = 0x463B96181691FC9C

func polyglotRecord(key uint64, move, weight uint16) []byte {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], key)
	binary.BigEndian.PutUint16(buf[8:10], move)
	binary.BigEndian.PutUint16(buf[10:12], weight)
	return buf[:]
}

func TestLoadPolyglotReaderDecodesPawnPush(t *testing.T) {
	// e2e4: from square 12 (rank1,file e), to square 28 (rank3,file e).
	move := uint16(28 | 12<<6)
	r := bytes.NewReader(polyglotRecord(startPosHash, move, 10))

	b, err := book.LoadPolyglotReader(r)
	require.NoError(t, err)

	entries := book.Books{b}.Entries(board.Initial(), board.White)
	require.Len(t, entries, 1)

	e2, err := board.ParseSquare("e2")
	require.NoError(t, err)
	e4, err := board.ParseSquare("e4")
	require.NoError(t, err)

	assert.Equal(t, e2, entries[0].Move.From)
	assert.Equal(t, e4, entries[0].Move.To)
	assert.Equal(t, 10, entries[0].Weight)
}

func TestEntriesAggregatesWeightAcrossBooks(t *testing.T) {
	move := uint16(28 | 12<<6)
	b1, err := book.LoadPolyglotReader(bytes.NewReader(polyglotRecord(startPosHash, move, 5)))
	require.NoError(t, err)
	b2, err := book.LoadPolyglotReader(bytes.NewReader(polyglotRecord(startPosHash, move, 7)))
	require.NoError(t, err)

	entries := book.Books{b1, b2}.Entries(board.Initial(), board.White)
	require.Len(t, entries, 1)
	assert.Equal(t, 12, entries[0].Weight)
}

func TestMaxEntryPicksHighestWeight(t *testing.T) {
	e2e4 := uint16(28 | 12<<6)
	// d2d4: from square 11 (rank1, file d), to square 27 (rank3, file d).
	d2d4 := uint16(27 | 11<<6)

	b, err := book.LoadPolyglotReader(concatRecords(
		polyglotRecord(startPosHash, e2e4, 1),
		polyglotRecord(startPosHash, d2d4, 50),
	))
	require.NoError(t, err)

	m, ok := book.MaxEntry(board.Initial(), board.White, book.Books{b})
	require.True(t, ok)

	d2, err := board.ParseSquare("d2")
	require.NoError(t, err)
	d4, err := board.ParseSquare("d4")
	require.NoError(t, err)
	assert.Equal(t, d2, m.From)
	assert.Equal(t, d4, m.To)
}

func TestWeightedEntryReturnsAKnownMove(t *testing.T) {
	move := uint16(28 | 12<<6)
	b, err := book.LoadPolyglotReader(bytes.NewReader(polyglotRecord(startPosHash, move, 3)))
	require.NoError(t, err)

	m, ok := book.WeightedEntry(board.Initial(), board.White, book.Books{b})
	require.True(t, ok)

	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	assert.Equal(t, e2, m.From)
	assert.Equal(t, e4, m.To)
}

func concatRecords(chunks ...[]byte) *bytes.Reader {
	var all []byte
	for _, c := range chunks {
		all = append(all, c...)
	}
	return bytes.NewReader(all)
}
