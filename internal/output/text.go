package output

import (
	"fmt"
	"io"
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WriteDivide writes one "move: nodes" line per root move in move order,
// followed by the total.
func WriteDivide(w io.Writer, counts map[chess.Move]int64) error {
	moves := make([]chess.Move, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	slices.SortFunc(moves, chess.CompareMoves)

	var total int64
	for _, m := range moves {
		if _, err := fmt.Fprintf(w, "%s: %d\n", m, counts[m]); err != nil {
			return err
		}
		total += counts[m]
	}
	_, err := fmt.Fprintf(w, "\nMoves: %d\nNodes: %d\n", len(moves), total)
	return err
}

// WriteBoard writes a diagram of the board, rank 8 at the top, with file
// and rank labels.
func WriteBoard(w io.Writer, board *chess.Board) error {
	for row := chess.LastRow; row >= chess.FirstRow; row-- {
		line := make([]byte, 0, 2*chess.BoardSize+2)
		line = append(line, byte(chess.RankBase+row-1), ' ')
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			ch := byte('.')
			if piece, ok := board.Get(chess.MustPosition(row, col)); ok {
				ch = piece.Letter()
			}
			line = append(line, ch, ' ')
		}
		line[len(line)-1] = '\n'
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "  a b c d e f g h\n")
	return err
}
