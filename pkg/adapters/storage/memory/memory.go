package memory

import (
	"context"
	"sync"

	"github.com/loktar00/graphiti-state/internal/state"
)

// InMemoryStateStorage implements storage.Store using an in-memory map
// This is for testing purposes only
type InMemoryStateStorage struct {
	states map[string]*state.State
	mu     sync.RWMutex
}

// NewInMemoryStateStorage creates a new in-memory state storage
func NewInMemoryStateStorage() *InMemoryStateStorage {
	return &InMemoryStateStorage{
		states: make(map[string]*state.State),
	}
}

// Save persists the state marker for dir (storage.Store interface)
func (s *InMemoryStateStorage) Save(ctx context.Context, dir string, st *state.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Compact copies, so later mutations of st are not visible here
	s.states[dir] = st.Compact()
	return nil
}

// Load retrieves the state marker for dir (storage.Store interface)
func (s *InMemoryStateStorage) Load(ctx context.Context, dir string) (*state.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[dir]
	if !ok {
		return nil, nil
	}

	return st.Compact(), nil
}

// Exists reports whether a state marker is present for dir (storage.Store interface)
func (s *InMemoryStateStorage) Exists(ctx context.Context, dir string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.states[dir]
	return ok, nil
}
