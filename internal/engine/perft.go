package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf positions reachable in exactly depth plies. The
// counts for well-known positions are published, which makes this the
// standard cross-check for a move generator.
func Perft(g *Game, depth int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := g.AllLegalMoves(g.turn)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return int64(len(moves)), nil
	}

	var nodes int64
	for _, m := range moves {
		child := g.Clone()
		if err := child.ApplyMove(m); err != nil {
			return 0, err
		}
		n, err := Perft(child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each root move.
func Divide(g *Game, depth int) (map[chess.Move]int64, error) {
	moves, err := g.AllLegalMoves(g.turn)
	if err != nil {
		return nil, err
	}

	out := make(map[chess.Move]int64, len(moves))
	for _, m := range moves {
		child := g.Clone()
		if err := child.ApplyMove(m); err != nil {
			return nil, err
		}
		n, err := Perft(child, depth-1)
		if err != nil {
			return nil, err
		}
		out[m] = n
	}
	return out, nil
}
