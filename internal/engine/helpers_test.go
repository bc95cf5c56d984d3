package engine

import (
	"slices"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustFEN builds a game from fen or fails the test.
func mustFEN(t testing.TB, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// sq parses a square name or fails the test.
func sq(t testing.TB, name string) chess.Position {
	t.Helper()
	p, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return p
}

// mv builds a move from coordinate text such as "e2e4" or "a7a8q".
func mv(t testing.TB, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("bad move text %q", text)
	}
	m := chess.NewMove(sq(t, text[0:2]), sq(t, text[2:4]))
	if len(text) == 5 {
		m.Promotion = chess.KindFromLetter(text[4])
	}
	return m
}

// play applies a sequence of moves or fails the test.
func play(t testing.TB, g *Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := g.ApplyMove(mv(t, text)); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v\n%s", text, err, g.FEN())
		}
	}
}

// moveTexts renders moves as sorted coordinate strings.
func moveTexts(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}
