package main

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRun(t *testing.T) {
	for _, workers := range []int{1, 4} {
		var sb strings.Builder
		testutil.AssertNoError(t, run(&sb, options{fen: engine.InitialFEN, depth: 2, workers: workers}))
		testutil.AssertContains(t, sb.String(), "perft(2) = 400")
	}
}

func TestRun_Divide(t *testing.T) {
	for _, workers := range []int{1, 3} {
		var sb strings.Builder
		opts := options{
			fen:       "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth:     2,
			divide:    true,
			showBoard: true,
			workers:   workers,
		}
		testutil.AssertNoError(t, run(&sb, opts))

		out := sb.String()
		testutil.AssertContains(t, out, "5 K P . . . . . r")
		testutil.AssertContains(t, out, "e2e4: ")
		testutil.AssertContains(t, out, "Moves: 14\nNodes: 191\n")
	}
}

func TestRun_Errors(t *testing.T) {
	var sb strings.Builder
	testutil.AssertErrorIs(t, run(&sb, options{fen: "not a fen", depth: 1}), chesserrors.ErrInvalidFEN)
	testutil.AssertTrue(t, run(&sb, options{fen: engine.InitialFEN}) != nil, "depth 0 should fail")
}
