// Package fen reads and writes positions in FEN notation. Internally a
// Position is always mover-relative (own pieces uppercase), while FEN is
// always white-relative, so Decode/Encode rotate across that boundary the
// same way load_fen/generate_fen do in the reference engine this package is
// modeled on.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrewharabor/simplychess/pkg/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a mover-relative Position and the color to
// move. The halfmove clock and fullmove number are validated but not
// retained: this engine does not track game history or the fifty-move rule.
func Decode(fen string) (*board.Position, board.Color, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, 0, fmt.Errorf("invalid FEN %q: need at least 4 fields", fen)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, 0, fmt.Errorf("invalid FEN %q: need 8 ranks", fen)
	}

	pos := board.EmptyPosition()
	for r, row := range rows {
		sq := int(board.A8) + r*10
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '8':
				for n := int(ch - '0'); n > 0; n-- {
					if sq >= int(board.A8)+r*10+8 {
						return nil, 0, fmt.Errorf("invalid FEN %q: rank %d overflows", fen, r+1)
					}
					pos.Cells[sq] = board.Empty
					sq++
				}
			default:
				piece, ok := board.ParsePiece(ch)
				if !ok {
					return nil, 0, fmt.Errorf("invalid piece %q in FEN: %q", ch, fen)
				}
				if sq >= int(board.A8)+r*10+8 {
					return nil, 0, fmt.Errorf("invalid FEN %q: rank %d overflows", fen, r+1)
				}
				pos.Cells[sq] = piece
				sq++
			}
		}
		if sq != int(board.A8)+r*10+8 {
			return nil, 0, fmt.Errorf("invalid FEN %q: rank %d is short", fen, r+1)
		}
	}

	color, ok := parseColor(fields[1])
	if !ok {
		return nil, 0, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	rights := fields[2]
	white := board.Castling{strings.ContainsRune(rights, 'Q'), strings.ContainsRune(rights, 'K')}
	black := board.Castling{strings.ContainsRune(rights, 'q'), strings.ContainsRune(rights, 'k')}

	var ep board.Square
	if fields[3] != "-" {
		sq, err := board.ParseSquare(fields[3])
		if err != nil {
			return nil, 0, fmt.Errorf("invalid en passant square in FEN: %q", fen)
		}
		ep = sq
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err != nil || n < 0 {
			return nil, 0, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err != nil || n < 0 {
			return nil, 0, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
		}
	}

	pos.OwnCastling = white
	pos.OppCastling = black
	pos.EnPassant = ep
	pos.KingPassant = board.NoSquare

	if color == board.Black {
		pos = pos.Rotate()
	}
	return pos, color, nil
}

// Encode renders pos (as seen by color) back into a FEN string.
func Encode(pos *board.Position, color board.Color) string {
	white, black := pos.OwnCastling, pos.OppCastling
	if color == board.Black {
		pos = pos.Rotate()
		white, black = black, white
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.Cells[board.NewSquare(file, rank)]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(rune(piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(color.String())

	rightsStr := white.String('K', 'Q') + black.String('k', 'q')
	if rightsStr == "" {
		rightsStr = "-"
	}
	sb.WriteByte(' ')
	sb.WriteString(rightsStr)

	ep := pos.EnPassant
	sb.WriteByte(' ')
	if ep == board.NoSquare || !ep.IsOnBoard() {
		sb.WriteByte('-')
	} else {
		sb.WriteString(ep.String())
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}
