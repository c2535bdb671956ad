// Command simplychess is a UCI chess engine: a 10x12 mailbox move
// generator, a midgame/endgame blended evaluator, alpha-beta search with
// quiescence, iterative deepening and a transposition table, and a
// PolyGlot-compatible opening book.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrewharabor/simplychess/pkg/engine"
	"github.com/andrewharabor/simplychess/pkg/uci"
	"github.com/seekerror/logw"
)

var (
	books = flag.String("books", "", "Directory of PolyGlot opening books (main1.bin..main7.bin); default: opening-books beside the executable")
	depth = flag.Int("depth", 5, "Default iterative-deepening depth cap")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: simplychess [options]

simplychess is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	dir := *books
	if dir == "" {
		if exe, err := os.Executable(); err == nil {
			dir = filepath.Join(filepath.Dir(exe), "opening-books")
		}
	}

	e := engine.New(ctx, "simplychess", "andrewharabor",
		engine.WithDepth(*depth),
		engine.WithBooksDir(dir),
	)

	driver := uci.NewDriver(e, os.Stdin, os.Stdout)
	if err := driver.Run(ctx); err != nil {
		logw.Exitf(ctx, "UCI driver failed: %v", err)
	}
}
