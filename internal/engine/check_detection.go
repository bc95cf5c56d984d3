package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsSquareAttacked returns true if any piece of byColour has a candidate
// move ending on sq. Pawn pushes never count. sq is meant to hold a piece of
// the other colour, such as its king: pawns only capture diagonally onto an
// occupied square.
func IsSquareAttacked(board *chess.Board, sq chess.Position, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		piece, _ := board.Get(from)
		for _, m := range CandidateMoves(board, from, attackState) {
			if m.End == sq && !(piece.Kind == chess.Pawn && m.Start.Col() == m.End.Col()) {
				return true
			}
		}
	}
	return false
}

// kingSquare finds the colour's king, failing unless there is exactly one.
func kingSquare(board *chess.Board, colour chess.Colour) (chess.Position, error) {
	at, n := board.FindKing(colour)
	if n != 1 {
		return chess.Position{}, errors.Wrapf(errors.ErrMissingKing, "%d %s kings on the board", n, colour)
	}
	return at, nil
}

// inCheck returns true if the colour's king is attacked on the current board.
func (g *Game) inCheck(colour chess.Colour) (bool, error) {
	at, err := kingSquare(&g.board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(&g.board, at, colour.Opposite()), nil
}
