package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pushes, captures and en passant for a pawn.
func pawnMoves(board *chess.Board, from chess.Position, colour chess.Colour, st GenState) []chess.Move {
	var moves []chess.Move
	dir := colour.Forward()

	// Forward move
	if one, ok := from.Offset(dir, 0); ok && board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)

		// Double push from starting rank
		if from.Row() == colour.PawnRow() {
			if two, ok := from.Offset(2*dir, 0); ok && board.IsEmpty(two) {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		if target, occupied := board.Get(to); occupied {
			if target.Colour != colour {
				moves = appendPawnMove(moves, from, to, colour)
			}
			continue
		}
		if isEnPassantTarget(board, from, colour, dc, st) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}

	return moves
}

// appendPawnMove adds from-to, expanded into one move per promotion kind
// when to is on the farthest rank.
func appendPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour) []chess.Move {
	if to.Row() != colour.PromotionRow() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.NewPromotion(from, to, kind))
	}
	return moves
}

// isEnPassantTarget reports whether the en passant pawn stands directly
// beside from, dc columns away, and is an enemy pawn.
func isEnPassantTarget(board *chess.Board, from chess.Position, colour chess.Colour, dc int, st GenState) bool {
	if !st.HasEnPassant {
		return false
	}
	beside, ok := from.Offset(0, dc)
	if !ok || beside != st.EnPassant {
		return false
	}
	victim, occupied := board.Get(beside)
	return occupied && victim.Kind == chess.Pawn && victim.Colour != colour
}

// isEnPassantCapture reports whether a pawn move is a diagonal step onto an
// empty square, which only en passant allows.
func isEnPassantCapture(board *chess.Board, piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.Pawn && m.Start.Col() != m.End.Col() && board.IsEmpty(m.End)
}

// enPassantVictim returns the square of the pawn an en passant move captures:
// the destination column on the mover's starting row.
func enPassantVictim(m chess.Move) chess.Position {
	return chess.MustPosition(m.Start.Row(), m.End.Col())
}

// isDoublePush reports whether a pawn move advanced two rows.
func isDoublePush(piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.Pawn && abs(m.End.Row()-m.Start.Row()) == 2
}
