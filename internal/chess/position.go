package chess

import "github.com/lgbarn/chessrules-go/internal/errors"

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstRow = 1
	LastRow  = BoardSize
	FirstCol = 1
	LastCol  = BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Position is a square on the board. Rows and columns run 1..8, row 1 being
// White's back rank and column 1 the a-file.
//
// The coordinates are stored zero-based so the zero value is a1; a Position
// outside the board cannot be built from outside this package.
type Position struct {
	row, col int8
}

// NewPosition returns the square at (row, col), both in 1..8.
func NewPosition(row, col int) (Position, error) {
	if !OnBoard(row, col) {
		return Position{}, errors.Wrapf(errors.ErrInvalidPosition, "row %d, col %d", row, col)
	}
	return Position{row: int8(row - 1), col: int8(col - 1)}, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
// Use it only for constant squares.
func MustPosition(row, col int) Position {
	p, err := NewPosition(row, col)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSquare parses a square name such as "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, errors.Wrapf(errors.ErrInvalidPosition, "square %q", s)
	}
	return NewPosition(int(s[1]-RankBase)+1, int(s[0]-FileBase)+1)
}

// OnBoard reports whether (row, col) lies on the board.
func OnBoard(row, col int) bool {
	return row >= FirstRow && row <= LastRow && col >= FirstCol && col <= LastCol
}

// Row returns the row, 1..8.
func (p Position) Row() int { return int(p.row) + 1 }

// Col returns the column, 1..8.
func (p Position) Col() int { return int(p.col) + 1 }

// Offset returns the square dr rows and dc columns away, if it is on the board.
func (p Position) Offset(dr, dc int) (Position, bool) {
	row, col := p.Row()+dr, p.Col()+dc
	if !OnBoard(row, col) {
		return Position{}, false
	}
	return Position{row: int8(row - 1), col: int8(col - 1)}, true
}

// Equal reports whether p and q are the same square.
func (p Position) Equal(q Position) bool {
	return p == q
}

// Less orders positions by row, then column.
func (p Position) Less(q Position) bool {
	if p.row != q.row {
		return p.row < q.row
	}
	return p.col < q.col
}

// String returns the square name, e.g. "e4".
func (p Position) String() string {
	return string([]byte{FileBase + byte(p.col), RankBase + byte(p.row)})
}

// AllPositions returns every square, a1 first and h8 last.
func AllPositions() []Position {
	all := make([]Position, 0, BoardSize*BoardSize)
	for row := int8(0); row < BoardSize; row++ {
		for col := int8(0); col < BoardSize; col++ {
			all = append(all, Position{row: row, col: col})
		}
	}
	return all
}
