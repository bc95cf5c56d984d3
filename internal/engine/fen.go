package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. Missing trailing fields
// default to White to move, no castling, no en passant, "0 1" clocks.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	g := &Game{turn: chess.White, moveNumber: 1}

	if err := parsePiecePositions(&g.board, parts[0]); err != nil {
		return nil, err
	}
	if err := validateKings(&g.board); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}

	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "placement",
			Expected: "8 ranks",
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	for i, rankText := range ranks {
		row := chess.LastRow - i
		col := chess.FirstCol
		for j, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.NoKind
				if c <= unicode.MaxASCII {
					kind = chess.KindFromLetter(byte(c))
				}
				if kind == chess.NoKind {
					return &errors.ParseError{
						Err:    errors.ErrInvalidFEN,
						Field:  "placement",
						Offset: j + 1,
						Got:    fmt.Sprintf("piece character %q", c),
					}
				}
				pos, err := chess.NewPosition(row, col)
				if err != nil {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", row)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(pos, chess.Piece{Colour: colour, Kind: kind})
				col++
			}
		}
		if col != chess.LastCol+1 {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    fmt.Sprintf("rank %d", row),
				Expected: "8 squares",
				Got:      strconv.Itoa(col - 1),
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.turn = chess.White
	case "b":
		g.turn = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseCastlingRights turns the castling availability field into has-moved
// flags: a right that is absent marks its rook as moved, and a colour with
// no rights at all has its king marked as moved.
func parseCastlingRights(g *Game, parts []string) error {
	g.moved = AllMoved()
	if len(parts) < 3 || parts[2] == "-" {
		g.moved = inferMoved(&g.board, g.moved)
		return nil
	}

	for i, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var side Side
		switch unicode.ToLower(c) {
		case 'k':
			side = Kingside
		case 'q':
			side = Queenside
		default:
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "castling",
				Offset:   i + 1,
				Expected: "one of KQkq",
				Got:      string(c),
			}
		}
		if colour == chess.White {
			g.moved.WhiteKing = false
		} else {
			g.moved.BlackKing = false
		}
		clearRook(&g.moved, colour, side)
	}

	g.moved = inferMoved(&g.board, g.moved)
	return nil
}

// clearRook marks a rook unmoved; only FEN parsing builds flags this way.
func clearRook(f *MovedFlags, c chess.Colour, side Side) {
	switch {
	case c == chess.White && side == Kingside:
		f.WhiteKingRook = false
	case c == chess.White:
		f.WhiteQueenRook = false
	case side == Kingside:
		f.BlackKingRook = false
	default:
		f.BlackQueenRook = false
	}
}

// parseEnPassant parses the en passant field: FEN names the square the pawn
// skipped, the game records the pawn itself.
func parseEnPassant(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	skipped, err := chess.ParseSquare(parts[3])
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	pawn, ok := skipped.Offset(g.turn.Opposite().Forward(), 0)
	if !ok || !g.validEnPassant(pawn) {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "en passant",
			Expected: fmt.Sprintf("square behind a %s pawn", g.turn.Opposite()),
			Got:      parts[3],
		}
	}
	g.enPassant, g.hasEnPassant = pawn, true
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *Game, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: parts[4]}
		}
		g.halfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: parts[5]}
		}
		g.moveNumber = n
	}
	return nil
}

// FEN converts the game to a FEN string.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, g.moved)
	sb.WriteByte(' ')
	if g.hasEnPassant {
		skipped, _ := g.enPassant.Offset(-g.turn.Opposite().Forward(), 0)
		sb.WriteString(skipped.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.LastRow; row >= chess.FirstRow; row-- {
		emptyCount := 0
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			piece, ok := board.Get(chess.MustPosition(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > chess.FirstRow {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, moved MovedFlags) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range castleSides {
			if !moved.CanCastle(colour, side) {
				continue
			}
			kind := chess.King
			if side == Queenside {
				kind = chess.Queen
			}
			sb.WriteByte(chess.Piece{Colour: colour, Kind: kind}.Letter())
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
