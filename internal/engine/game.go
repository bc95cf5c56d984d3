package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is a single match: the board plus whose turn it is, the castling
// has-moved flags and the en passant target.
//
// A Game is not safe for concurrent use; callers sharing one must serialise
// access themselves.
type Game struct {
	board chess.Board
	turn  chess.Colour
	moved MovedFlags

	// Square of the pawn that advanced two squares on the last move.
	enPassant    chess.Position
	hasEnPassant bool

	// Informational counters carried through FEN; no rule is enforced on them.
	halfmoveClock int
	moveNumber    int
}

// GameState is the complete state of a game, for persistence and transfer.
type GameState struct {
	Board     chess.Snapshot
	Turn      chess.Colour
	Moved     MovedFlags
	EnPassant *chess.Position
}

// NewGame creates a game at the standard starting position, White to move.
func NewGame() *Game {
	g := &Game{turn: chess.White, moveNumber: 1}
	g.board.SetupInitialPosition()
	return g
}

// NewGameFromSnapshot creates a game from a board snapshot with the given
// side to move. Kings and rooks on their home squares count as unmoved.
func NewGameFromSnapshot(s chess.Snapshot, turn chess.Colour) (*Game, error) {
	if turn != chess.White && turn != chess.Black {
		return nil, &errors.ParseError{Err: errors.ErrInvalidSnapshot, Field: "turn", Got: fmt.Sprint(int(turn))}
	}
	board, err := chess.BoardFromSnapshot(s)
	if err != nil {
		return nil, err
	}
	if err := validateKings(board); err != nil {
		return nil, err
	}
	g := &Game{board: *board, turn: turn, moveNumber: 1}
	g.moved = inferMoved(board, MovedFlags{})
	return g, nil
}

// NewGameFromState restores a game saved with State.
func NewGameFromState(s GameState) (*Game, error) {
	g, err := NewGameFromSnapshot(s.Board, s.Turn)
	if err != nil {
		return nil, err
	}
	g.moved = inferMoved(&g.board, s.Moved)
	if s.EnPassant != nil {
		if err := g.setEnPassant(*s.EnPassant); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Board returns a copy of the board.
func (g *Game) Board() chess.Board {
	return g.board
}

// Snapshot returns the board contents.
func (g *Game) Snapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// Moved returns the has-moved flags.
func (g *Game) Moved() MovedFlags {
	return g.moved
}

// EnPassant returns the square of the pawn capturable en passant, if any.
func (g *Game) EnPassant() (chess.Position, bool) {
	return g.enPassant, g.hasEnPassant
}

// MoveNumber returns the full move number, starting at 1.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// State captures the full game state.
func (g *Game) State() GameState {
	s := GameState{
		Board: g.board.Snapshot(),
		Turn:  g.turn,
		Moved: g.moved,
	}
	if g.hasEnPassant {
		ep := g.enPassant
		s.EnPassant = &ep
	}
	return s
}

// SetBoard replaces the board contents, keeping the side to move. The en
// passant target is cleared. Has-moved flags are kept, and any king or rook
// missing from its home square is marked as moved; flags never reset.
func (g *Game) SetBoard(s chess.Snapshot) error {
	board, err := chess.BoardFromSnapshot(s)
	if err != nil {
		return err
	}
	if err := validateKings(board); err != nil {
		return err
	}
	g.board = *board
	g.moved = inferMoved(board, g.moved)
	g.hasEnPassant = false
	return nil
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// genState returns the metadata move generation needs.
func (g *Game) genState() GenState {
	return GenState{Moved: g.moved, EnPassant: g.enPassant, HasEnPassant: g.hasEnPassant}
}

// setEnPassant validates and records an en passant target.
func (g *Game) setEnPassant(at chess.Position) error {
	if !g.validEnPassant(at) {
		return &errors.ParseError{
			Err:      errors.ErrInvalidSnapshot,
			Field:    "en passant",
			Expected: fmt.Sprintf("%s pawn after a double push", g.turn.Opposite()),
			Got:      at.String(),
		}
	}
	g.enPassant, g.hasEnPassant = at, true
	return nil
}

// validEnPassant reports whether at holds a pawn of the side that just
// moved, standing where a double push from its start row lands.
func (g *Game) validEnPassant(at chess.Position) bool {
	mover := g.turn.Opposite()
	piece, ok := g.board.Get(at)
	return ok && piece == chess.Piece{Colour: mover, Kind: chess.Pawn} &&
		at.Row() == mover.PawnRow()+2*mover.Forward()
}

// validateKings checks there is exactly one king of each colour.
func validateKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := kingSquare(board, colour); err != nil {
			return err
		}
	}
	return nil
}

// inferMoved marks as moved every king or rook not on its home square.
func inferMoved(board *chess.Board, flags MovedFlags) MovedFlags {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if piece, ok := board.Get(kingHome(colour)); !ok || piece != (chess.Piece{Colour: colour, Kind: chess.King}) {
			flags.markKing(colour)
		}
		for _, side := range castleSides {
			if piece, ok := board.Get(rookHome(colour, side)); !ok || piece != (chess.Piece{Colour: colour, Kind: chess.Rook}) {
				flags.markRook(colour, side)
			}
		}
	}
	return flags
}
