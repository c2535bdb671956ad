// Package book reads PolyGlot-format opening books and answers lookups
// against a board.Position. It is modeled on
// hailam-chessplay/internal/book/book.go's reader shape (binary.BigEndian
// over 16-byte records, io.ReadFull in a loop) but stores raw records and
// defers move decoding to lookup time, since the decoded squares depend on
// which color is to move.
package book

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/zobrist"
	"github.com/seekerror/logw"
)

// rawEntry is one 16-byte PolyGlot record, with the 4-byte learn field
// dropped: this engine never writes books back out.
type rawEntry struct {
	move   uint16
	weight uint16
}

// Book is a single loaded PolyGlot .bin file, indexed by position key.
type Book struct {
	byKey map[uint64][]rawEntry
}

// LoadPolyglot reads a PolyGlot opening book from disk.
func LoadPolyglot(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPolyglotReader(f)
}

// LoadPolyglotReader reads a PolyGlot opening book from r. Each record is
// 16 big-endian bytes: u64 key, u16 move, u16 weight, u32 learn.
func LoadPolyglotReader(r io.Reader) (*Book, error) {
	b := &Book{byKey: make(map[uint64][]rawEntry)}

	var rec [16]byte
	for {
		_, err := io.ReadFull(r, rec[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading opening book: %w", err)
		}
		key := binary.BigEndian.Uint64(rec[0:8])
		move := binary.BigEndian.Uint16(rec[8:10])
		weight := binary.BigEndian.Uint16(rec[10:12])
		b.byKey[key] = append(b.byKey[key], rawEntry{move: move, weight: weight})
	}
	return b, nil
}

// Books is a set of opening books loaded together, queried as one: the same
// move found in more than one book has its weights summed, matching
// book_entries in the reference engine this package generalizes.
type Books []*Book

// LoadDir loads main1.bin through main7.bin out of dir, the fixed naming
// convention the reference engine's opening-books directory uses. A missing,
// truncated, or otherwise unreadable file is skipped and logged rather than
// failing the whole load: spec.md's error-handling policy for opening books
// is "skip that file; continue with whatever loaded", so LoadDir itself
// never returns an error.
func LoadDir(ctx context.Context, dir string) Books {
	var books Books
	for i := 1; i <= 7; i++ {
		path := filepath.Join(dir, fmt.Sprintf("main%d.bin", i))
		b, err := LoadPolyglot(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logw.Errorf(ctx, "Skipping opening book %v: %v", path, err)
			}
			continue
		}
		books = append(books, b)
	}
	return books
}

// Entry is a decoded, color-relative opening-book move with its aggregated
// weight across every loaded book.
type Entry struct {
	Move   board.Move
	Weight int
}

// Entries returns every book move known for pos, aggregated by weight
// across all loaded books, decoded into pos's own mover-relative squares.
func (books Books) Entries(pos *board.Position, color board.Color) []Entry {
	if len(books) == 0 {
		return nil
	}
	key := zobrist.Hash(pos, color)

	var entries []Entry
	for _, b := range books {
		for _, raw := range b.byKey[key] {
			m, ok := decodeMove(pos, raw.move, color)
			if !ok {
				continue
			}
			merged := false
			for i := range entries {
				if entries[i].Move == m {
					entries[i].Weight += int(raw.weight)
					merged = true
					break
				}
			}
			if !merged {
				entries = append(entries, Entry{Move: m, Weight: int(raw.weight)})
			}
		}
	}
	return entries
}

// promotionPieces maps the PolyGlot promotion encoding (0=none, 1=N, 2=B,
// 3=R, 4=Q) to the white (uppercase) piece letter a Move.Promotion carries.
var promotionPieces = [...]board.Piece{
	0: board.Empty,
	1: board.WhiteKnight,
	2: board.WhiteBishop,
	3: board.WhiteRook,
	4: board.WhiteQueen,
}

// Mover-relative squares of the own king's home square before castling,
// for white and for black. A black-to-move book entry is mirrored by the
// same point-symmetric 119-s flip Position.Rotate uses, which — because
// the board is an even 8 files wide — lands the e-file on the d-file, so
// the two home squares differ.
const (
	whiteOwnKingHome = board.A1 + 4 // e1
	blackOwnKingHome = board.A1 + 3 // e8 mirrored
)

// decodeMove turns a raw PolyGlot move field into a board.Move relative to
// pos, filling in the captured piece by consulting pos itself and remapping
// PolyGlot's king-captures-rook castling encoding to a two-square king move.
func decodeMove(pos *board.Position, raw uint16, color board.Color) (board.Move, bool) {
	toSquare := raw & 0x3f
	fromSquare := (raw >> 6) & 0x3f
	promo := (raw >> 12) & 0x7
	if int(promo) >= len(promotionPieces) {
		return board.NoMove, false
	}

	from := board.NewSquare(int(fromSquare&7), int(fromSquare>>3))
	to := board.NewSquare(int(toSquare&7), int(toSquare>>3))

	if color == board.Black {
		from = 119 - from
		to = 119 - to
	}

	if (from == whiteOwnKingHome || from == blackOwnKingHome) && pos.Cells[from] == board.WhiteKing {
		switch to {
		case board.H1:
			to = from + 2
		case board.A1:
			to = from - 2
		}
	}

	return board.Move{
		From:      from,
		To:        to,
		Capture:   pos.Cells[to],
		Promotion: promotionPieces[promo],
	}, true
}
