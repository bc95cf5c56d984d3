package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustGameFromFEN builds a game from a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustGameFromFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return g
}

// MustSquare parses a square name such as "e4".
// It calls t.Fatal if the name is not a square.
func MustSquare(t *testing.T, name string) chess.Position {
	t.Helper()
	p, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", name, err)
	}
	return p
}

// MustMove builds a move from two square names and an optional promotion.
func MustMove(t *testing.T, from, to string, promotion ...chess.PieceKind) chess.Move {
	t.Helper()
	m := chess.NewMove(MustSquare(t, from), MustSquare(t, to))
	if len(promotion) > 0 {
		m.Promotion = promotion[0]
	}
	return m
}

// MustPlay applies each move in turn, failing the test on the first error.
func MustPlay(t *testing.T, g *engine.Game, moves ...chess.Move) {
	t.Helper()
	for _, m := range moves {
		if err := g.ApplyMove(m); err != nil {
			t.Fatalf("failed to apply %v: %v", m, err)
		}
	}
}
