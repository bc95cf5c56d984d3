package engine

import "testing"

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight", "4k3/8/8/8/8/8/8/1N2K3 b - - 0 1", true},
		{"bishops on same colour", "2b1k3/8/8/8/8/8/8/5BK1 w - - 0 1", true},
		{"bishops on opposite colours", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"two knights", "4k3/8/8/8/8/8/8/1NN1K3 w - - 0 1", false},
		{"knight each", "1n2k3/8/8/8/8/8/8/1N2K3 w - - 0 1", false},
		{"pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"start", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen).Board()
			if got := HasInsufficientMaterial(&board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v; want %v", got, tt.want)
			}
		})
	}
}
