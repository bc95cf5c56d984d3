package worker

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// countSubtree is the ProcessFunc used by Divide.
func countSubtree(item WorkItem) ProcessResult {
	n, err := engine.Perft(item.Game, item.Depth)
	return ProcessResult{Move: item.Move, Nodes: n, Error: err}
}

// Divide is engine.Divide with each root move counted on its own worker.
// The first error stops the remaining work.
func Divide(g *engine.Game, depth, workers int) (map[chess.Move]int64, error) {
	moves, err := g.AllLegalMoves(g.Turn())
	if err != nil {
		return nil, err
	}

	items := make([]WorkItem, 0, len(moves))
	for _, m := range moves {
		child := g.Clone()
		if err := child.ApplyMove(m); err != nil {
			return nil, err
		}
		items = append(items, WorkItem{Game: child, Move: m, Depth: depth - 1})
	}

	pool := NewPool(countSubtree, WithWorkers(workers), WithBufferSize(len(items)+1))
	pool.Start()
	for _, item := range items {
		pool.Submit(item)
	}
	go pool.Close()

	out := make(map[chess.Move]int64, len(items))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		out[result.Move] = result.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// Perft sums a parallel Divide.
func Perft(g *engine.Game, depth, workers int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}
	counts, err := Divide(g, depth, workers)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	return total, nil
}
