package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.Turn() != chess.White {
		t.Errorf("Turn() = %v; want White", g.Turn())
	}
	if diff := cmp.Diff(MovedFlags{}, g.Moved()); diff != "" {
		t.Errorf("Moved() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := g.EnPassant(); ok {
		t.Error("EnPassant() set on a new game")
	}
	if got := g.FEN(); got != InitialFEN {
		t.Errorf("FEN() = %q; want %q", got, InitialFEN)
	}
}

func TestNewGameFromSnapshot(t *testing.T) {
	s := mustFEN(t, "r3k3/8/8/8/8/8/8/4K2R w - - 0 1").Snapshot()

	g, err := NewGameFromSnapshot(s, chess.Black)
	if err != nil {
		t.Fatalf("NewGameFromSnapshot error: %v", err)
	}
	if g.Turn() != chess.Black {
		t.Errorf("Turn() = %v; want Black", g.Turn())
	}
	// Pieces on their home squares count as unmoved.
	if got := g.FEN(); got != "r3k3/8/8/8/8/8/8/4K2R b Kq - 0 1" {
		t.Errorf("FEN() = %q", got)
	}
}

func TestNewGameFromSnapshot_Errors(t *testing.T) {
	good := NewGame().Snapshot()

	noKing := good
	noKing[0][4] = nil

	badKind := good
	badKind[3][3] = &chess.Piece{Colour: chess.White, Kind: chess.NumPieceKinds}

	badColour := good
	badColour[3][3] = &chess.Piece{Colour: chess.Colour(7), Kind: chess.Pawn}

	tests := []struct {
		name    string
		s       chess.Snapshot
		turn    chess.Colour
		wantErr error
	}{
		{"missing king", noKing, chess.White, chesserrors.ErrMissingKing},
		{"bad kind", badKind, chess.White, chesserrors.ErrInvalidSnapshot},
		{"bad colour", badColour, chess.White, chesserrors.ErrInvalidSnapshot},
		{"bad turn", good, chess.Colour(5), chesserrors.ErrInvalidSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGameFromSnapshot(tt.s, tt.turn); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewGameFromSnapshot error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestState_RoundTrip(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5", "e4e5", "f7f5", "e1e2")

	restored, err := NewGameFromState(g.State())
	if err != nil {
		t.Fatalf("NewGameFromState error: %v", err)
	}
	if diff := cmp.Diff(g.State(), restored.State()); diff != "" {
		t.Errorf("restored state differs (-want +got):\n%s", diff)
	}

	// The en passant target went away with White's king move.
	if _, ok := restored.EnPassant(); ok {
		t.Error("EnPassant() should be cleared")
	}
	if !restored.Moved().WhiteKing {
		t.Error("white king should be marked as moved")
	}
}

func TestNewGameFromState_EnPassant(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "d7d5", "e4e5", "f7f5")

	s := g.State()
	restored, err := NewGameFromState(s)
	if err != nil {
		t.Fatalf("NewGameFromState error: %v", err)
	}
	moves, err := restored.LegalMoves(sq(t, "e5"))
	if err != nil {
		t.Fatalf("LegalMoves(e5) error: %v", err)
	}
	if !chess.ContainsMove(moves, mv(t, "e5f6")) {
		t.Errorf("LegalMoves(e5) = %v; want en passant e5f6", moves)
	}

	bad := s
	d4 := sq(t, "d4")
	bad.EnPassant = &d4
	if _, err := NewGameFromState(bad); !errors.Is(err, chesserrors.ErrInvalidSnapshot) {
		t.Errorf("NewGameFromState(en passant d4) error = %v; want ErrInvalidSnapshot", err)
	}
}

func TestSetBoard(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	target := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1").Snapshot()
	if err := g.SetBoard(target); err != nil {
		t.Fatalf("SetBoard error: %v", err)
	}
	if g.Turn() != chess.Black {
		t.Errorf("Turn() = %v; want Black", g.Turn())
	}
	if _, ok := g.EnPassant(); ok {
		t.Error("SetBoard should clear the en passant target")
	}
	if diff := cmp.Diff(target, g.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
	if got := g.FEN(); got != "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1" {
		t.Errorf("FEN() = %q", got)
	}
}

func TestSetBoard_FlagsNeverReset(t *testing.T) {
	g := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	home := g.Snapshot()
	play(t, g, "h1g1")

	if err := g.SetBoard(home); err != nil {
		t.Fatalf("SetBoard error: %v", err)
	}
	if !g.Moved().WhiteKingRook {
		t.Error("rook moved flag was reset by SetBoard")
	}

	noRook := home
	noRook[0][0] = nil
	if err := g.SetBoard(noRook); err != nil {
		t.Fatalf("SetBoard error: %v", err)
	}
	want := MovedFlags{WhiteKingRook: true, WhiteQueenRook: true}
	if diff := cmp.Diff(want, g.Moved()); diff != "" {
		t.Errorf("Moved() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBoard_Invalid(t *testing.T) {
	g := NewGame()
	before := g.State()

	var empty chess.Snapshot
	if err := g.SetBoard(empty); !errors.Is(err, chesserrors.ErrMissingKing) {
		t.Errorf("SetBoard(empty) error = %v; want ErrMissingKing", err)
	}
	if diff := cmp.Diff(before, g.State()); diff != "" {
		t.Errorf("failed SetBoard changed the game (-before +after):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	g := NewGame()
	c := g.Clone()
	play(t, c, "e2e4")

	if got := g.FEN(); got != InitialFEN {
		t.Errorf("original FEN() = %q; want %q", got, InitialFEN)
	}
	if c.Turn() != chess.Black {
		t.Errorf("clone Turn() = %v; want Black", c.Turn())
	}
}

func TestBoard_ReturnsCopy(t *testing.T) {
	g := NewGame()
	b := g.Board()
	b.Clear(sq(t, "e1"))

	if g.board.IsEmpty(sq(t, "e1")) {
		t.Error("modifying Board() result changed the game")
	}
}
