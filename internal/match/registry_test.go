package match

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	r := NewRegistry(0)

	m, err := r.Create(nil)
	testutil.AssertNoError(t, err)
	_, err = uuid.Parse(m.ID)
	testutil.AssertNoError(t, err, "match id should be a uuid")

	got, err := r.Get(m.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == m, "Get should return the created match")

	testutil.AssertNoError(t, m.Do(func(g *engine.Game) error {
		testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
		return nil
	}))

	testutil.AssertNoError(t, r.Delete(m.ID))
	_, err = r.Get(m.ID)
	testutil.AssertErrorIs(t, err, chesserrors.ErrMatchNotFound)
	testutil.AssertErrorIs(t, r.Delete(m.ID), chesserrors.ErrMatchNotFound)
}

func TestRegistry_CreateFromGame(t *testing.T) {
	r := NewRegistry(0)
	g := testutil.MustGameFromFEN(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	m, err := r.Create(g)
	testutil.AssertNoError(t, err)
	err = m.Do(func(g *engine.Game) error {
		mate, err := g.IsInStalemate(chess.Black)
		testutil.AssertTrue(t, mate, "black should be stalemated")
		return err
	})
	testutil.AssertNoError(t, err)
}

func TestRegistry_Capacity(t *testing.T) {
	r := NewRegistry(2)

	first, err := r.Create(nil)
	testutil.AssertNoError(t, err)
	_, err = r.Create(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, r.IsFull(), "registry should be full")

	_, err = r.Create(nil)
	testutil.AssertErrorIs(t, err, chesserrors.ErrRegistryFull)

	testutil.AssertNoError(t, r.Delete(first.ID))
	_, err = r.Create(nil)
	testutil.AssertNoError(t, err, "a slot should be free after Delete")
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry(0)
	var ids []string
	for i := 0; i < 5; i++ {
		m, err := r.Create(nil)
		testutil.AssertNoError(t, err)
		ids = append(ids, m.ID)
	}
	testutil.AssertNoError(t, r.Delete(ids[2]))

	var got []string
	for _, m := range r.List() {
		got = append(got, m.ID)
	}
	testutil.AssertEqual(t, got, []string{ids[0], ids[1], ids[3], ids[4]})
	testutil.AssertEqual(t, r.Len(), 4)
}

func TestMatch_DoReturnsError(t *testing.T) {
	r := NewRegistry(0)
	m, err := r.Create(nil)
	testutil.AssertNoError(t, err)

	err = m.Do(func(g *engine.Game) error {
		return g.ApplyMove(testutil.MustMove(t, "e7", "e5"))
	})
	testutil.AssertErrorIs(t, err, chesserrors.ErrWrongTurn)
}

func TestMatch_ConcurrentMoves(t *testing.T) {
	r := NewRegistry(0)
	m, err := r.Create(nil)
	testutil.AssertNoError(t, err)

	// Every worker tries the same opening move; exactly one may win.
	const numWorkers = 10
	e4 := testutil.MustMove(t, "e2", "e4")

	var wg sync.WaitGroup
	results := make(chan error, numWorkers)
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- m.Do(func(g *engine.Game) error {
				return g.ApplyMove(e4)
			})
		}()
	}
	wg.Wait()
	close(results)

	applied := 0
	for err := range results {
		if err == nil {
			applied++
			continue
		}
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoPieceAtSquare)
	}
	testutil.AssertEqual(t, applied, 1)
}

func TestRegistry_ConcurrentCreate(t *testing.T) {
	r := NewRegistry(50)

	const numWorkers = 10
	const perWorker = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	full := 0
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := r.Create(nil); err != nil {
					mu.Lock()
					full++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, r.Len(), 50)
	testutil.AssertEqual(t, full, 50)
}
