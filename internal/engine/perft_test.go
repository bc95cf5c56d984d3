package engine

import (
	"testing"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  int64
		long  bool
	}{
		{"start depth 1", InitialFEN, 1, 20, false},
		{"start depth 2", InitialFEN, 2, 400, false},
		{"start depth 3", InitialFEN, 3, 8902, true},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48, false},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039, true},
		{"position 3 depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14, false},
		{"position 3 depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			t.Parallel()
			got, err := Perft(mustFEN(t, tt.fen), tt.depth)
			if err != nil {
				t.Fatalf("Perft error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	if got, err := Perft(NewGame(), 0); err != nil || got != 1 {
		t.Errorf("Perft(0) = %d, %v; want 1, nil", got, err)
	}
}

func TestDivide(t *testing.T) {
	g := NewGame()
	counts, err := Divide(g, 2)
	if err != nil {
		t.Fatalf("Divide error: %v", err)
	}
	if len(counts) != 20 {
		t.Fatalf("len(Divide) = %d; want 20", len(counts))
	}
	var total int64
	for m, n := range counts {
		if n != 20 {
			t.Errorf("Divide[%v] = %d; want 20", m, n)
		}
		total += n
	}
	if total != 400 {
		t.Errorf("total = %d; want 400", total)
	}
	if got := g.FEN(); got != InitialFEN {
		t.Errorf("Divide changed the game: %q", got)
	}
}

func BenchmarkPerftStart3(b *testing.B) {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, err := Perft(g, 3); err != nil {
			b.Fatal(err)
		}
	}
}
