package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status summarises a colour's situation.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsInCheck returns true if the given colour's king is attacked.
func (g *Game) IsInCheck(colour chess.Colour) (bool, error) {
	return g.inCheck(colour)
}

// IsInCheckmate returns true if the colour is in check with no legal move.
func (g *Game) IsInCheckmate(colour chess.Colour) (bool, error) {
	status, err := g.Status(colour)
	return status == Checkmate, err
}

// IsInStalemate returns true if the colour is not in check but has no legal move.
func (g *Game) IsInStalemate(colour chess.Colour) (bool, error) {
	status, err := g.Status(colour)
	return status == Stalemate, err
}

// Status reports check, checkmate or stalemate for the colour.
func (g *Game) Status(colour chess.Colour) (Status, error) {
	check, err := g.inCheck(colour)
	if err != nil {
		return Ongoing, err
	}
	hasMoves, err := g.HasLegalMoves(colour)
	if err != nil {
		return Ongoing, err
	}

	switch {
	case check && !hasMoves:
		return Checkmate, nil
	case check:
		return Check, nil
	case !hasMoves:
		return Stalemate, nil
	default:
		return Ongoing, nil
	}
}
