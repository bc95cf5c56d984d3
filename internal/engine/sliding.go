package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// slidingMoves walks each ray one square at a time. A ray ends on the first
// occupied square, which is included only if it holds an enemy piece.
func slidingMoves(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target, occupied := board.Get(to)
			if occupied {
				if target.Colour != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
