package chess

import (
	"cmp"
	"slices"
)

// Move is a single move: where a piece starts, where it ends and, for a pawn
// reaching the last rank, the kind it becomes.
type Move struct {
	Start Position
	End   Position

	// The kind promoted to (NoKind if not a promotion).
	Promotion PieceKind
}

// NewMove creates a move without promotion.
func NewMove(start, end Position) Move {
	return Move{Start: start, End: end}
}

// NewPromotion creates a promoting pawn move.
func NewPromotion(start, end Position, kind PieceKind) Move {
	return Move{Start: start, End: end, Promotion: kind}
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String returns the coordinate form used in logs and errors, e.g. "e7e8q".
func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.IsPromotion() {
		s += string(Piece{Colour: Black, Kind: m.Promotion}.Letter())
	}
	return s
}

// CompareMoves orders moves by start, end, then promotion kind.
func CompareMoves(a, b Move) int {
	if a.Start != b.Start {
		if a.Start.Less(b.Start) {
			return -1
		}
		return 1
	}
	if a.End != b.End {
		if a.End.Less(b.End) {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.Promotion, b.Promotion)
}

// SortMoves sorts moves in place into a deterministic order.
func SortMoves(moves []Move) {
	slices.SortFunc(moves, CompareMoves)
}

// ContainsMove reports whether moves holds m.
func ContainsMove(moves []Move, m Move) bool {
	return slices.Contains(moves, m)
}
