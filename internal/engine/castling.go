package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castling geometry by column, standard chess only.
const (
	kingHomeCol = 5

	kingsideRookCol  = 8
	queensideRookCol = 1
)

var castleSides = [...]Side{Kingside, Queenside}

// rookHome returns the starting square of the colour's rook on side.
func rookHome(colour chess.Colour, side Side) chess.Position {
	col := kingsideRookCol
	if side == Queenside {
		col = queensideRookCol
	}
	return chess.MustPosition(colour.HomeRow(), col)
}

// kingHome returns the starting square of the colour's king.
func kingHome(colour chess.Colour) chess.Position {
	return chess.MustPosition(colour.HomeRow(), kingHomeCol)
}

// castleDir returns the column step from the king toward the side's rook.
func castleDir(side Side) int {
	if side == Kingside {
		return 1
	}
	return -1
}

// castlingCandidates returns the castling moves whose path is physically
// clear: king and rook unmoved, rook at home, every square between empty.
// Attacked squares are left to the legality filter.
func castlingCandidates(board *chess.Board, from chess.Position, colour chess.Colour, moved MovedFlags) []chess.Move {
	if from != kingHome(colour) || moved.KingMoved(colour) {
		return nil
	}

	var moves []chess.Move
	for _, side := range castleSides {
		if !moved.CanCastle(colour, side) {
			continue
		}
		home := rookHome(colour, side)
		if rook, ok := board.Get(home); !ok || rook != (chess.Piece{Colour: colour, Kind: chess.Rook}) {
			continue
		}
		if !isStraightClear(board, from, home) {
			continue
		}
		to, _ := from.Offset(0, 2*castleDir(side))
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}

// isCastle reports whether a king move travels two columns.
func isCastle(piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.King && m.Start.Row() == m.End.Row() && abs(m.End.Col()-m.Start.Col()) == 2
}

// castleSide returns which side a castling move goes to.
func castleSide(m chess.Move) Side {
	if m.End.Col() > m.Start.Col() {
		return Kingside
	}
	return Queenside
}

// castleRookSquares returns where the rook starts and ends for a castling move.
func castleRookSquares(m chess.Move) (from, to chess.Position) {
	side := castleSide(m)
	colour := chess.White
	if m.Start.Row() == chess.Black.HomeRow() {
		colour = chess.Black
	}
	from = rookHome(colour, side)
	to, _ = m.Start.Offset(0, castleDir(side))
	return from, to
}

// castlePath returns the squares the king crosses and lands on.
func castlePath(m chess.Move) []chess.Position {
	dir := castleDir(castleSide(m))
	crossed, _ := m.Start.Offset(0, dir)
	return []chess.Position{crossed, m.End}
}

// rookSide returns the castling side of a rook standing on its home square.
func rookSide(colour chess.Colour, at chess.Position) (Side, bool) {
	for _, side := range castleSides {
		if at == rookHome(colour, side) {
			return side, true
		}
	}
	return 0, false
}

// isStraightClear checks if every square strictly between two squares on the
// same row is empty.
func isStraightClear(board *chess.Board, from, to chess.Position) bool {
	dir := sign(to.Col() - from.Col())
	sq, ok := from.Offset(0, dir)
	for ok && sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(0, dir)
	}
	return true
}
