package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrewharabor/simplychess/pkg/board"
	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/andrewharabor/simplychess/pkg/board/zobrist"
	"github.com/andrewharabor/simplychess/pkg/eval"
)

// unicodeGlyphs maps each piece letter to the chess glyph the reference
// engine's `board unicode` command prints, carried over from
// UNICODE_PIECE_SYMBOLS since spec.md's Board command keeps that display
// option.
var unicodeGlyphs = map[board.Piece]rune{
	board.WhiteKing:   '♔',
	board.WhiteQueen:  '♕',
	board.WhiteRook:   '♖',
	board.WhiteBishop: '♗',
	board.WhiteKnight: '♘',
	board.WhitePawn:   '♙',
	board.BlackKing:   '♚',
	board.BlackQueen:  '♛',
	board.BlackRook:   '♜',
	board.BlackBishop: '♝',
	board.BlackKnight: '♞',
	board.BlackPawn:   '♟',
}

// Eval returns the static evaluation of the current position, in
// centipawns from White's point of view, matching spec.md §6's `eval`
// command ("static eval: <±float>" in pawns from White's POV). The
// evaluator itself always scores from the mover's point of view, so a
// Black-to-move position is negated here, the same way the reference
// engine's `eval` handler does.
func (e *Engine) Eval(ctx context.Context) board.Score {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pos == nil {
		return 0
	}
	return e.color.Unit() * eval.Evaluate(e.pos)
}

// FEN renders the current position as a FEN string, in White's absolute
// frame.
func (e *Engine) FEN(ctx context.Context) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pos == nil {
		return ""
	}
	return fen.Encode(e.pos, e.color)
}

// Hash returns the PolyGlot-compatible Zobrist key of the current position.
func (e *Engine) Hash(ctx context.Context) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pos == nil {
		return 0
	}
	return zobrist.Hash(e.pos, e.color)
}

// Board renders the current position as a bordered 8x8 grid of lines,
// always oriented with White's first rank at the bottom, matching the
// reference engine's display_board: a Black-to-move position is stored in
// Black's own relative frame, so it is rotated back to White's absolute
// frame before being drawn. When unicode is true, pieces are drawn with
// chess glyphs instead of ASCII letters.
func (e *Engine) Board(ctx context.Context, unicode bool) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pos == nil {
		return nil
	}

	pos := e.pos
	if e.color == board.Black {
		pos = pos.Rotate()
	}

	border := "  +---+---+---+---+---+---+---+---+"
	var lines []string
	lines = append(lines, border)
	for rank := 7; rank >= 0; rank-- {
		var row strings.Builder
		fmt.Fprintf(&row, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			piece := pos.Cells[int(board.A8)+(7-rank)*10+file]
			glyph := string(rune(piece))
			if piece.IsEmpty() {
				glyph = " "
			} else if unicode {
				if r, ok := unicodeGlyphs[piece]; ok {
					glyph = string(r)
				}
			}
			fmt.Fprintf(&row, " %s |", glyph)
		}
		lines = append(lines, row.String())
		lines = append(lines, border)
	}
	lines = append(lines, "    a   b   c   d   e   f   g   h")
	return lines
}
