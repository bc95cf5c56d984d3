package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove plays a move for the side to move. Every check happens before
// the board is touched, so a rejected move leaves the game unchanged.
func (g *Game) ApplyMove(m chess.Move) error {
	piece, ok := g.board.Get(m.Start)
	if !ok {
		return g.moveError(errors.ErrNoPieceAtSquare, m)
	}
	if piece.Colour != g.turn {
		return g.moveError(errors.ErrWrongTurn, m)
	}

	legal, err := g.LegalMoves(m.Start)
	if err != nil {
		return err
	}
	if !chess.ContainsMove(legal, m) {
		return g.moveError(errors.ErrIllegalMove, m)
	}

	captured, isCapture := g.board.Get(m.End)
	isCapture = isCapture || isEnPassantCapture(&g.board, piece, m)

	g.play(piece, m)
	g.updateMoved(piece, m, captured)

	// Set en passant target if double pawn push
	g.hasEnPassant = isDoublePush(piece, m)
	if g.hasEnPassant {
		g.enPassant = m.End
	}

	if piece.Kind == chess.Pawn || isCapture {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if g.turn == chess.Black {
		g.moveNumber++
	}
	g.turn = g.turn.Opposite()

	return nil
}

// updateMoved sets the has-moved flags after m: the king moving (castling
// included), a rook leaving its home square, or a rook captured on it.
func (g *Game) updateMoved(piece chess.Piece, m chess.Move, captured chess.Piece) {
	switch piece.Kind {
	case chess.King:
		g.moved.markKing(piece.Colour)
		if isCastle(piece, m) {
			g.moved.markRook(piece.Colour, castleSide(m))
		}
	case chess.Rook:
		if side, ok := rookSide(piece.Colour, m.Start); ok {
			g.moved.markRook(piece.Colour, side)
		}
	}

	if captured.Kind == chess.Rook {
		if side, ok := rookSide(captured.Colour, m.End); ok {
			g.moved.markRook(captured.Colour, side)
		}
	}
}

// moveError wraps a sentinel with the move and side to move.
func (g *Game) moveError(err error, m chess.Move) error {
	return &errors.MoveError{
		Err:    err,
		Move:   m.String(),
		Square: m.Start.String(),
		Colour: g.turn.String(),
	}
}
