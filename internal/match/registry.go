// Package match keeps the games being played, keyed by id, and serialises
// access to each one.
package match

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Match is one game in the registry. The game itself is only reachable
// through Do, which holds the match's lock.
type Match struct {
	ID      string
	Created time.Time

	seq  uint64
	mu   sync.Mutex
	game *engine.Game
}

// Do runs fn with exclusive access to the match's game.
func (m *Match) Do(fn func(g *engine.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.game)
}

// Registry holds matches with mutex protection for concurrent access.
type Registry struct {
	mu          sync.RWMutex
	matches     map[string]*Match
	maxCapacity int
	nextSeq     uint64
	now         func() time.Time
}

// NewRegistry creates an empty registry.
// maxCapacity of 0 means unlimited capacity.
func NewRegistry(maxCapacity int) *Registry {
	return &Registry{
		matches:     make(map[string]*Match),
		maxCapacity: maxCapacity,
		now:         time.Now,
	}
}

// Create registers g under a fresh id. A nil game starts from the standard
// position.
func (r *Registry) Create(g *engine.Game) (*Match, error) {
	if g == nil {
		g = engine.NewGame()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isFull() {
		return nil, errors.Wrapf(errors.ErrRegistryFull, "%d matches", len(r.matches))
	}

	r.nextSeq++
	m := &Match{
		ID:      uuid.NewString(),
		Created: r.now(),
		seq:     r.nextSeq,
		game:    g,
	}
	r.matches[m.ID] = m
	return m, nil
}

// Get returns the match with the given id.
func (r *Registry) Get(id string) (*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMatchNotFound, "match %q", id)
	}
	return m, nil
}

// Delete removes the match with the given id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return errors.Wrapf(errors.ErrMatchNotFound, "match %q", id)
	}
	delete(r.matches, id)
	return nil
}

// List returns every match, oldest first.
func (r *Registry) List() []*Match {
	r.mu.RLock()
	list := make([]*Match, 0, len(r.matches))
	for _, m := range r.matches {
		list = append(list, m)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b *Match) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})
	return list
}

// Len returns the number of matches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

// IsFull returns true if the registry has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (r *Registry) IsFull() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isFull()
}

func (r *Registry) isFull() bool {
	return r.maxCapacity > 0 && len(r.matches) >= r.maxCapacity
}
