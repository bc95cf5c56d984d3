// Package output converts games to and from their JSON wire form and writes
// plain-text reports.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Colour string `json:"colour"` // "white" or "black"
	Kind   string `json:"kind"`   // "pawn", "knight", ...
}

// JSONBoard holds the board rows, rank 1 first; nil entries are empty squares.
type JSONBoard [chess.BoardSize][chess.BoardSize]*JSONPiece

// Rows returns the board as the slice form SnapshotFromJSON decodes.
func (jb JSONBoard) Rows() [][]*JSONPiece {
	rows := make([][]*JSONPiece, len(jb))
	for r := range jb {
		rows[r] = jb[r][:]
	}
	return rows
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	UCI       string `json:"uci,omitempty"`
}

// JSONCastling lists which castling moves remain available.
type JSONCastling struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string       `json:"id,omitempty"`
	FEN        string       `json:"fen"`
	Turn       string       `json:"turn"`
	Status     string       `json:"status"`
	MoveNumber int          `json:"moveNumber"`
	Castling   JSONCastling `json:"castling"`
	EnPassant  string       `json:"enPassant,omitempty"`
	Board      JSONBoard    `json:"board"`
	LegalMoves []JSONMove   `json:"legalMoves"`

	InsufficientMaterial bool `json:"insufficientMaterial"`
}

// GameToJSON converts a game to JSON format, including the side to move's
// status and legal moves.
func GameToJSON(g *engine.Game) (*JSONGame, error) {
	status, err := g.Status(g.Turn())
	if err != nil {
		return nil, err
	}
	moves, err := g.AllLegalMoves(g.Turn())
	if err != nil {
		return nil, err
	}

	moved := g.Moved()
	board := g.Board()
	jg := &JSONGame{
		FEN:        g.FEN(),
		Turn:       ColourName(g.Turn()),
		Status:     status.String(),
		MoveNumber: g.MoveNumber(),
		Castling: JSONCastling{
			WhiteKingside:  moved.CanCastle(chess.White, engine.Kingside),
			WhiteQueenside: moved.CanCastle(chess.White, engine.Queenside),
			BlackKingside:  moved.CanCastle(chess.Black, engine.Kingside),
			BlackQueenside: moved.CanCastle(chess.Black, engine.Queenside),
		},
		Board:      SnapshotToJSON(g.Snapshot()),
		LegalMoves: MovesToJSON(moves),

		InsufficientMaterial: engine.HasInsufficientMaterial(&board),
	}
	if at, ok := g.EnPassant(); ok {
		jg.EnPassant = at.String()
	}
	return jg, nil
}

// MovesToJSON converts moves to JSON format, sorted by start and end square.
func MovesToJSON(moves []chess.Move) []JSONMove {
	sorted := make([]chess.Move, len(moves))
	copy(sorted, moves)
	chess.SortMoves(sorted)

	result := make([]JSONMove, len(sorted))
	for i, m := range sorted {
		result[i] = MoveToJSON(m)
	}
	return result
}

// MoveToJSON converts a single move to JSON format.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		From: m.Start.String(),
		To:   m.End.String(),
		UCI:  m.String(),
	}
	if m.IsPromotion() {
		jm.Promotion = kindName(m.Promotion)
	}
	return jm
}

// MoveFromJSON decodes a move. The UCI field is ignored.
func MoveFromJSON(jm JSONMove) (chess.Move, error) {
	from, err := chess.ParseSquare(jm.From)
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidRequest, Field: "from", Expected: "square", Got: fmt.Sprintf("%q", jm.From)}
	}
	to, err := chess.ParseSquare(jm.To)
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidRequest, Field: "to", Expected: "square", Got: fmt.Sprintf("%q", jm.To)}
	}

	m := chess.NewMove(from, to)
	if jm.Promotion != "" {
		kind, ok := parseKind(jm.Promotion)
		if !ok || !kind.IsPromotable() {
			return chess.Move{}, &errors.ParseError{
				Err:      errors.ErrInvalidRequest,
				Field:    "promotion",
				Expected: "queen, rook, bishop or knight",
				Got:      jm.Promotion,
			}
		}
		m.Promotion = kind
	}
	return m, nil
}

// SnapshotToJSON converts board contents to JSON format.
func SnapshotToJSON(s chess.Snapshot) JSONBoard {
	var jb JSONBoard
	for r, row := range s {
		for c, piece := range row {
			if piece != nil {
				jb[r][c] = &JSONPiece{Colour: ColourName(piece.Colour), Kind: kindName(piece.Kind)}
			}
		}
	}
	return jb
}

// SnapshotFromJSON decodes board contents. Request bodies decode into
// slices so a grid that is not exactly 8 rows of 8 is rejected rather than
// truncated or padded.
func SnapshotFromJSON(rows [][]*JSONPiece) (chess.Snapshot, error) {
	var s chess.Snapshot
	if len(rows) != chess.BoardSize {
		return s, &errors.ParseError{
			Err:      errors.ErrInvalidSnapshot,
			Field:    "board",
			Expected: "8 rows",
			Got:      strconv.Itoa(len(rows)),
		}
	}
	for r, row := range rows {
		if len(row) != chess.BoardSize {
			return s, &errors.ParseError{
				Err:      errors.ErrInvalidSnapshot,
				Field:    fmt.Sprintf("board[%d]", r),
				Expected: "8 squares",
				Got:      strconv.Itoa(len(row)),
			}
		}
	}
	for r, row := range rows {
		for c, jp := range row {
			if jp == nil {
				continue
			}
			colour, ok := parseColour(jp.Colour)
			if !ok {
				return s, &errors.ParseError{
					Err:      errors.ErrInvalidSnapshot,
					Field:    fmt.Sprintf("board[%d][%d].colour", r, c),
					Expected: "white or black",
					Got:      fmt.Sprintf("%q", jp.Colour),
				}
			}
			kind, ok := parseKind(jp.Kind)
			if !ok {
				return s, &errors.ParseError{
					Err:      errors.ErrInvalidSnapshot,
					Field:    fmt.Sprintf("board[%d][%d].kind", r, c),
					Expected: "piece kind",
					Got:      fmt.Sprintf("%q", jp.Kind),
				}
			}
			s[r][c] = &chess.Piece{Colour: colour, Kind: kind}
		}
	}
	return s, nil
}

// ParseColour decodes "white" or "black", ignoring case.
func ParseColour(name string) (chess.Colour, error) {
	colour, ok := parseColour(name)
	if !ok {
		return colour, &errors.ParseError{Err: errors.ErrInvalidRequest, Field: "turn", Expected: "white or black", Got: fmt.Sprintf("%q", name)}
	}
	return colour, nil
}

// ColourName returns "white" or "black".
func ColourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func parseColour(name string) (chess.Colour, bool) {
	switch strings.ToLower(name) {
	case "white":
		return chess.White, true
	case "black":
		return chess.Black, true
	default:
		return chess.White, false
	}
}

// kindName returns the piece kind as a lower-case word.
func kindName(k chess.PieceKind) string {
	return strings.ToLower(k.String())
}

func parseKind(name string) (chess.PieceKind, bool) {
	for _, k := range chess.PieceKinds {
		if strings.EqualFold(name, k.String()) {
			return k, true
		}
	}
	return chess.NoKind, false
}
