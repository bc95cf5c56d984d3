// perft counts the positions reachable from a FEN in a fixed number of
// plies, optionally split by root move.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

var (
	fen     = flag.String("fen", engine.InitialFEN, "Starting position")
	depth   = flag.Int("depth", 3, "Search depth in plies")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	board   = flag.Bool("board", false, "Print the starting board")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of root moves searched in parallel (1 = serial)")
)

// options holds one perft run's settings.
type options struct {
	fen       string
	depth     int
	divide    bool
	showBoard bool
	workers   int
}

func main() {
	flag.Usage = usage
	flag.Parse()

	opts := options{fen: *fen, depth: *depth, divide: *divide, showBoard: *board, workers: *workers}
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}
}

// run loads the position and writes the perft report to w.
func run(w io.Writer, opts options) error {
	if opts.depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", opts.depth)
	}
	g, err := engine.NewGameFromFEN(opts.fen)
	if err != nil {
		return err
	}

	if opts.showBoard {
		b := g.Board()
		if err := output.WriteBoard(w, &b); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	start := time.Now()
	if opts.divide {
		counts, err := divideCounts(g, opts)
		if err != nil {
			return err
		}
		return output.WriteDivide(w, counts)
	}

	var nodes int64
	if opts.workers > 1 {
		nodes, err = worker.Perft(g, opts.depth, opts.workers)
	} else {
		nodes, err = engine.Perft(g, opts.depth)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "perft(%d) = %d (%v)\n", opts.depth, nodes, time.Since(start).Round(time.Millisecond))
	return err
}

func divideCounts(g *engine.Game, opts options) (map[chess.Move]int64, error) {
	if opts.workers > 1 {
		return worker.Divide(g, opts.depth, opts.workers)
	}
	return engine.Divide(g, opts.depth)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts leaf positions to check move generation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
