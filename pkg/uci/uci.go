// Package uci implements a synchronous driver for the engine under the UCI
// protocol, covering the commands spec.md §6 puts in scope: uci, isready,
// quit, position, go, eval, board and flip. Unlike herohde/morlock's
// pkg/engine/uci (a goroutine-and-channel Driver built to support pondering
// and `stop` mid-search), this driver is a single blocking read-eval loop:
// spec.md's scheduling model never ponders and never interrupts a `go` in
// progress, so there is nothing concurrency would buy here.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andrewharabor/simplychess/pkg/board/fen"
	"github.com/andrewharabor/simplychess/pkg/engine"
	"github.com/seekerror/logw"
)

// defaultClockTime is what the reference engine assumes for whichever of
// wtime/btime/winc/binc is missing once any one of them is present: about
// ten seconds of move time at the engine's usual time/40 split.
const defaultClockTime = 400 * time.Second

// Driver reads UCI commands from in, one per line, and writes responses to
// out, one per line, flushing after each.
type Driver struct {
	e   *engine.Engine
	in  *bufio.Scanner
	out *bufio.Writer
}

// NewDriver returns a Driver for e, reading commands from in and writing
// responses to out.
func NewDriver(e *engine.Engine, in io.Reader, out io.Writer) *Driver {
	return &Driver{
		e:   e,
		in:  bufio.NewScanner(in),
		out: bufio.NewWriter(out),
	}
}

func (d *Driver) writeln(format string, args ...any) {
	fmt.Fprintf(d.out, format+"\n", args...)
	d.out.Flush()
}

// Run reads commands until EOF or a `quit` command, dispatching each line
// to its handler. Malformed or unrecognized input is ignored in place,
// per spec.md §7: the loop never exits because a line failed to parse.
func (d *Driver) Run(ctx context.Context) error {
	for d.in.Scan() {
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		cmd := tokens[0]
		args := tokens[1:]

		switch cmd {
		case "uci":
			// * uci
			//
			//	tell engine to use the uci (universal chess interface); reply
			//	with "id name"/"id author" and "uciok".
			d.writeln("id name %v", d.e.Name())
			d.writeln("id author %v", d.e.Author())
			d.writeln("uciok")

		case "isready":
			// * isready
			//
			//	synchronize with the GUI; used here to trigger one-time
			//	initialization (loading the opening books) before replying
			//	"readyok".
			d.e.Init(ctx)
			d.writeln("readyok")

		case "quit":
			return nil

		case "position":
			d.handlePosition(ctx, args)

		case "go":
			d.handleGo(ctx, args)

		case "eval":
			// * eval
			//
			//	not part of the UCI protocol proper; a reference-engine
			//	extension that prints the static evaluation of the current
			//	position, in pawns from White's point of view.
			score := float64(d.e.Eval(ctx)) / 100
			sign := ""
			if score >= 0 {
				sign = "+"
			}
			d.writeln("static eval: %v%v", sign, score)

		case "board":
			// * board [unicode]
			//
			//	not part of the UCI protocol proper; prints the current
			//	position as an 8x8 grid, optionally with chess glyphs, followed
			//	by its FEN and Zobrist hash.
			unicode := len(args) >= 1 && args[0] == "unicode"
			for _, row := range d.e.Board(ctx, unicode) {
				d.writeln("%v", row)
			}
			d.writeln("FEN: %v", d.e.FEN(ctx))
			d.writeln("HASH: %X", d.e.Hash(ctx))

		case "flip":
			// * flip
			//
			//	not part of the UCI protocol proper; swaps the side to move
			//	without changing the position.
			d.e.Flip(ctx)

		default:
			logw.Debugf(ctx, "Ignoring unrecognized command: %v", line)
		}
	}
	return d.in.Err()
}

// handlePosition implements:
//
//	* position [fen <fenstring> | startpos] moves <move1> ... <movei>
//
//	set up the position described in fenstring (or the standard starting
//	position) on the internal board, then play the given moves on it.
func (d *Driver) handlePosition(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	position := fen.Initial
	rest := args[1:]
	switch args[0] {
	case "startpos":
		// rest already points past "startpos".
	case "fen":
		if len(rest) < 6 {
			return
		}
		position = strings.Join(rest[:6], " ")
		rest = rest[6:]
	default:
		return
	}

	var moves []string
	for i, tok := range rest {
		if tok == "moves" {
			moves = rest[i+1:]
			break
		}
	}

	if err := d.e.SetPosition(ctx, position, moves); err != nil {
		logw.Errorf(ctx, "Invalid position: %v", err)
	}
}

// handleGo implements:
//
//	* go [movetime <x>] [depth <x>] [wtime <x>] [btime <x>] [winc <x>] [binc <x>]
//
//	start calculating on the current position. movetime is in milliseconds
//	and, if given, is used as an exact search budget. Otherwise, if any of
//	the clock tokens are given, the mover's remaining time and increment
//	derive a per-move budget; any clock token left unspecified defaults to
//	defaultClockTime/0, mirroring the reference engine's behavior of
//	assuming roughly ten seconds of move time is available. Absent both
//	movetime and any clock token, the search uses a flat default.
func (d *Driver) handleGo(ctx context.Context, args []string) {
	var opts engine.GoOptions
	opts.WTime, opts.BTime = defaultClockTime, defaultClockTime

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "movetime", "depth", "wtime", "btime", "winc", "binc":
			if i+1 >= len(args) {
				return
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return
			}
			i++

			switch args[i-1] {
			case "movetime":
				opts.MoveTime = time.Duration(n) * time.Millisecond
			case "depth":
				opts.Depth = n
			case "wtime":
				opts.WTime = time.Duration(n) * time.Millisecond
				opts.HasClock = true
			case "btime":
				opts.BTime = time.Duration(n) * time.Millisecond
				opts.HasClock = true
			case "winc":
				opts.WInc = time.Duration(n) * time.Millisecond
				opts.HasClock = true
			case "binc":
				opts.BInc = time.Duration(n) * time.Millisecond
				opts.HasClock = true
			}
		}
	}

	result := d.e.Go(ctx, opts, func(line string) {
		d.writeln("%v", line)
	})
	if result.Ignored {
		// spec.md §7: invalid position state on go is ignored outright --
		// not even a bestmove line is sent.
		return
	}
	if result.FromBook {
		d.writeln("info string weighted bookmove")
	}
	d.writeln("bestmove %v", result.Move)
}
