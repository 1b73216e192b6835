package storage

import (
	"context"

	"github.com/loktar00/graphiti-state/internal/state"
)

// Store persists the Graphiti state marker for a working directory.
//
// A directory owns at most one marker. Access is last-writer-wins: callers
// are assumed to be single, non-concurrent processes per directory.
type Store interface {
	// Save writes the state marker for dir. The error log is capped to
	// its retained window before writing.
	Save(ctx context.Context, dir string, st *state.State) error

	// Load reads the state marker for dir. A missing or malformed marker
	// yields (nil, nil), never an error.
	Load(ctx context.Context, dir string) (*state.State, error)

	// Exists reports whether a state marker is present for dir.
	Exists(ctx context.Context, dir string) (bool, error)
}
