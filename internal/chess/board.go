package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board is an 8x8 grid of optional pieces. It is a plain value: assigning a
// Board copies every square, which is what save/restore relies on.
type Board struct {
	// squares[row-1][col-1]; a zero Piece (Kind == NoKind) is an empty square.
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStartingBoard creates a board with the standard starting position.
func NewStartingBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[FirstRow-1][col] = W(backRank[col])
		b.squares[FirstRow][col] = W(Pawn)
		b.squares[LastRow-2][col] = B(Pawn)
		b.squares[LastRow-1][col] = B(backRank[col])
	}
}

// Get returns the piece at p and whether the square is occupied.
func (b *Board) Get(p Position) (Piece, bool) {
	piece := b.squares[p.row][p.col]
	return piece, piece.Kind != NoKind
}

// IsEmpty reports whether nothing stands on p.
func (b *Board) IsEmpty(p Position) bool {
	return b.squares[p.row][p.col].Kind == NoKind
}

// Set places a piece at p, replacing whatever stood there.
func (b *Board) Set(p Position, piece Piece) {
	b.squares[p.row][p.col] = piece
}

// Clear empties p.
func (b *Board) Clear(p Position) {
	b.squares[p.row][p.col] = Piece{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Occupied returns the squares holding a piece of the given colour, a1 first.
func (b *Board) Occupied(colour Colour) []Position {
	var out []Position
	for _, p := range AllPositions() {
		if piece, ok := b.Get(p); ok && piece.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// FindKing returns the square of the colour's king and how many kings of
// that colour are on the board.
func (b *Board) FindKing(colour Colour) (Position, int) {
	var at Position
	count := 0
	king := Piece{Colour: colour, Kind: King}
	for _, p := range AllPositions() {
		if piece, ok := b.Get(p); ok && piece == king {
			if count == 0 {
				at = p
			}
			count++
		}
	}
	return at, count
}

// String renders the board with rank 8 at the top, "." for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := LastRow; row >= FirstRow; row-- {
		for col := FirstCol; col <= LastCol; col++ {
			piece, ok := b.Get(Position{row: int8(row - 1), col: int8(col - 1)})
			if ok {
				sb.WriteByte(piece.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Snapshot is a full copy of a board's contents: Snapshot[row-1][col-1] is
// nil for an empty square.
type Snapshot [BoardSize][BoardSize]*Piece

// Snapshot captures the board contents for transfer to another layer.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if piece := b.squares[r][c]; piece.Kind != NoKind {
				s[r][c] = &piece
			}
		}
	}
	return s
}

// BoardFromSnapshot rebuilds a board from a snapshot. Unknown colours or
// kinds are rejected with ErrInvalidSnapshot.
func BoardFromSnapshot(s Snapshot) (*Board, error) {
	b := NewBoard()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			piece := s[r][c]
			if piece == nil {
				continue
			}
			if piece.Colour != White && piece.Colour != Black {
				return nil, &errors.ParseError{
					Err:   errors.ErrInvalidSnapshot,
					Field: fmt.Sprintf("board[%d][%d]", r, c),
					Got:   fmt.Sprintf("colour %d", piece.Colour),
				}
			}
			if piece.Kind <= NoKind || piece.Kind >= NumPieceKinds {
				return nil, &errors.ParseError{
					Err:   errors.ErrInvalidSnapshot,
					Field: fmt.Sprintf("board[%d][%d]", r, c),
					Got:   fmt.Sprintf("kind %d", piece.Kind),
				}
			}
			b.squares[r][c] = *piece
		}
	}
	return b, nil
}
