package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/turingtoy/pkg/machine"
	"github.com/aretw0/turingtoy/pkg/ports"
)

// Store is an in-memory ports.ResultStore, handy for tests and for
// serving without external dependencies.
type Store struct {
	mu      sync.RWMutex
	results map[string]*machine.Result
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{results: make(map[string]*machine.Result)}
}

var _ ports.ResultStore = (*Store)(nil)

// Save stores the result under id, replacing any previous entry.
func (s *Store) Save(_ context.Context, id string, result *machine.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[id] = result
	return nil
}

// Load returns the result for id, or ports.ErrResultNotFound.
func (s *Store) Load(_ context.Context, id string) (*machine.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return nil, ports.ErrResultNotFound
	}
	return result, nil
}

// List returns the stored IDs in sorted order.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.results))
	for id := range s.results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes the result for id. Deleting an absent id is a no-op.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, id)
	return nil
}
