package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LegalMoves returns the legal moves of the piece at pos, whichever colour
// it belongs to. An empty square fails with ErrNoPieceAtSquare.
func (g *Game) LegalMoves(pos chess.Position) ([]chess.Move, error) {
	piece, ok := g.board.Get(pos)
	if !ok {
		return nil, &errors.MoveError{Err: errors.ErrNoPieceAtSquare, Square: pos.String()}
	}

	candidates := CandidateMoves(&g.board, pos, g.genState())
	legal := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		safe, err := g.isSafe(piece, m)
		if err != nil {
			return nil, err
		}
		if safe {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// AllLegalMoves returns every legal move for the colour, in board order.
func (g *Game) AllLegalMoves(colour chess.Colour) ([]chess.Move, error) {
	var all []chess.Move
	for _, from := range g.board.Occupied(colour) {
		moves, err := g.LegalMoves(from)
		if err != nil {
			return nil, err
		}
		all = append(all, moves...)
	}
	return all, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (g *Game) HasLegalMoves(colour chess.Colour) (bool, error) {
	for _, from := range g.board.Occupied(colour) {
		moves, err := g.LegalMoves(from)
		if err != nil {
			return false, err
		}
		if len(moves) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// isSafe reports whether playing m leaves the mover's own king unattacked.
// Castling additionally requires the king not to start in, cross or land on
// an attacked square.
func (g *Game) isSafe(piece chess.Piece, m chess.Move) (bool, error) {
	if isCastle(piece, m) {
		return g.isCastleSafe(piece, m)
	}
	return g.withScratch(func() (bool, error) {
		g.play(piece, m)
		check, err := g.inCheck(piece.Colour)
		return !check, err
	})
}

// isCastleSafe tests the king on its start square, then on each square of
// its path with the king placed there.
func (g *Game) isCastleSafe(king chess.Piece, m chess.Move) (bool, error) {
	check, err := g.inCheck(king.Colour)
	if err != nil || check {
		return false, err
	}
	for _, sq := range castlePath(m) {
		safe, err := g.withScratch(func() (bool, error) {
			g.board.Clear(m.Start)
			g.board.Set(sq, king)
			check, err := g.inCheck(king.Colour)
			return !check, err
		})
		if err != nil || !safe {
			return false, err
		}
	}
	return true, nil
}

// withScratch runs fn against the live board and restores the board exactly
// afterwards, on every return path.
func (g *Game) withScratch(fn func() (bool, error)) (bool, error) {
	saved := g.board
	defer func() { g.board = saved }()
	return fn()
}

// play moves pieces on the board only: en passant removal, castling rook,
// the move itself and promotion. Metadata is left to ApplyMove.
func (g *Game) play(piece chess.Piece, m chess.Move) {
	switch {
	case isEnPassantCapture(&g.board, piece, m):
		g.board.Clear(enPassantVictim(m))
	case isCastle(piece, m):
		rookFrom, rookTo := castleRookSquares(m)
		rook, _ := g.board.Get(rookFrom)
		g.board.Clear(rookFrom)
		g.board.Set(rookTo, rook)
	}

	g.board.Clear(m.Start)
	if m.IsPromotion() {
		piece = chess.Piece{Colour: piece.Colour, Kind: m.Promotion}
	}
	g.board.Set(m.End, piece)
}
