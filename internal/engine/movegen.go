// Package engine provides chess move generation, legality checking and game state.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Side selects one of the two castling rooks.
type Side int

const (
	Kingside Side = iota
	Queenside
)

// MovedFlags records whether each king and castling rook has ever left its
// home square. Flags only ever go from false to true.
type MovedFlags struct {
	WhiteKing      bool
	WhiteKingRook  bool
	WhiteQueenRook bool
	BlackKing      bool
	BlackKingRook  bool
	BlackQueenRook bool
}

// AllMoved returns flags with every piece marked as moved (no castling).
func AllMoved() MovedFlags {
	return MovedFlags{true, true, true, true, true, true}
}

// KingMoved reports whether the colour's king has moved.
func (f MovedFlags) KingMoved(c chess.Colour) bool {
	if c == chess.White {
		return f.WhiteKing
	}
	return f.BlackKing
}

// RookMoved reports whether the colour's rook on the given side has moved.
func (f MovedFlags) RookMoved(c chess.Colour, side Side) bool {
	switch {
	case c == chess.White && side == Kingside:
		return f.WhiteKingRook
	case c == chess.White:
		return f.WhiteQueenRook
	case side == Kingside:
		return f.BlackKingRook
	default:
		return f.BlackQueenRook
	}
}

// CanCastle reports whether neither the king nor the side's rook has moved.
func (f MovedFlags) CanCastle(c chess.Colour, side Side) bool {
	return !f.KingMoved(c) && !f.RookMoved(c, side)
}

func (f *MovedFlags) markKing(c chess.Colour) {
	if c == chess.White {
		f.WhiteKing = true
	} else {
		f.BlackKing = true
	}
}

func (f *MovedFlags) markRook(c chess.Colour, side Side) {
	switch {
	case c == chess.White && side == Kingside:
		f.WhiteKingRook = true
	case c == chess.White:
		f.WhiteQueenRook = true
	case side == Kingside:
		f.BlackKingRook = true
	default:
		f.BlackQueenRook = true
	}
}

// GenState is the game metadata move generation depends on beyond the board.
type GenState struct {
	Moved MovedFlags

	// Square of a pawn that just advanced two squares, if HasEnPassant.
	EnPassant    chess.Position
	HasEnPassant bool
}

// attackState generates plain attacks: no castling, no en passant.
var attackState = GenState{Moved: AllMoved()}

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirections = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// CandidateMoves returns the geometrically possible moves of the piece at
// pos, including castling, double pawn pushes, en passant and one move per
// promotion kind. It does not check whether a move leaves the mover's own
// king attacked. An empty square yields no moves. The board is not modified.
func CandidateMoves(board *chess.Board, pos chess.Position, st GenState) []chess.Move {
	piece, ok := board.Get(pos)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, pos, piece.Colour, st)
	case chess.Knight:
		return stepMoves(board, pos, piece.Colour, knightOffsets)
	case chess.Bishop:
		return slidingMoves(board, pos, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, pos, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, pos, piece.Colour, queenDirections)
	case chess.King:
		moves := stepMoves(board, pos, piece.Colour, kingOffsets)
		return append(moves, castlingCandidates(board, pos, piece.Colour, st.Moved)...)
	case chess.NoKind, chess.NumPieceKinds:
		return nil
	}
	return nil
}

// stepMoves handles the single-step pieces (knight and king).
func stepMoves(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int) []chess.Move {
	moves := make([]chess.Move, 0, len(offsets))
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if target, occupied := board.Get(to); occupied && target.Colour == colour {
			continue
		}
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}
