package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  []string
		colour chess.Colour
		want   Status
	}{
		{"start", InitialFEN, nil, chess.White, Ongoing},
		{"fool's mate", InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, chess.White, Checkmate},
		{"fool's mate winner", InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, chess.Black, Ongoing},
		{"check with a block", InitialFEN, []string{"e2e4", "f7f5", "d1h5"}, chess.Black, Check},
		{"stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", nil, chess.Black, Stalemate},
		{"stalemate is not the other side's", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", nil, chess.White, Ongoing},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"a1a8"}, chess.Black, Checkmate},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", nil, chess.White, Ongoing},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustFEN(t, tt.fen)
			play(t, g, tt.moves...)

			got, err := g.Status(tt.colour)
			if err != nil {
				t.Fatalf("Status(%v) error: %v", tt.colour, err)
			}
			if got != tt.want {
				t.Errorf("Status(%v) = %v; want %v", tt.colour, got, tt.want)
			}

			check, _ := g.IsInCheck(tt.colour)
			mate, _ := g.IsInCheckmate(tt.colour)
			stale, _ := g.IsInStalemate(tt.colour)
			if check != (got == Check || got == Checkmate) || mate != (got == Checkmate) || stale != (got == Stalemate) {
				t.Errorf("IsInCheck/IsInCheckmate/IsInStalemate = %v/%v/%v; inconsistent with %v",
					check, mate, stale, got)
			}
		})
	}
}

func TestStatus_CheckmateHasNoMoves(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	for _, from := range g.board.Occupied(chess.White) {
		moves, err := g.LegalMoves(from)
		if err != nil {
			t.Fatalf("LegalMoves(%s) error: %v", from, err)
		}
		if len(moves) != 0 {
			t.Errorf("LegalMoves(%s) = %v; want none", from, moves)
		}
	}
}

func TestStatus_MissingKing(t *testing.T) {
	g := &Game{turn: chess.White}
	g.board.Set(sq(t, "e8"), chess.B(chess.King))

	_, err := g.Status(chess.White)
	if !errors.Is(err, chesserrors.ErrMissingKing) {
		t.Errorf("Status(White) error = %v; want ErrMissingKing", err)
	}
	if !chesserrors.IsFatal(err) {
		t.Errorf("IsFatal(%v) = false; want true", err)
	}
	if _, err := g.IsInCheck(chess.White); !errors.Is(err, chesserrors.ErrMissingKing) {
		t.Errorf("IsInCheck(White) error = %v; want ErrMissingKing", err)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Ongoing, "ongoing"},
		{Check, "check"},
		{Checkmate, "checkmate"},
		{Stalemate, "stalemate"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q; want %q", tt.status, got, tt.want)
		}
	}
}
