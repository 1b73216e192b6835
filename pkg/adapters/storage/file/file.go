package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/loktar00/graphiti-state/internal/state"
	"github.com/loktar00/graphiti-state/pkg/adapters/metrics/prometheus"
	"go.uber.org/zap"
)

// StateStorage implements storage.Store using a JSON marker file in the
// working directory.
type StateStorage struct {
	metrics *prometheus.Collector
	logger  *zap.Logger
}

// NewStateStorage creates a new file-based state storage
func NewStateStorage(metrics *prometheus.Collector, logger *zap.Logger) *StateStorage {
	return &StateStorage{
		metrics: metrics,
		logger:  logger,
	}
}

// Save persists the state marker to dir (storage.Store interface)
func (s *StateStorage) Save(ctx context.Context, dir string, st *state.State) error {
	marker := markerPath(dir)

	// Serialize the compacted state so the error log never grows past
	// its retained window on disk
	data, err := json.MarshalIndent(st.Compact(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(marker, data, 0o644); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	s.metrics.IncStateSaves()
	s.logger.Debug("state saved",
		zap.String("dir", dir),
		zap.Int("episode_count", st.EpisodeCount))

	return nil
}

// Load reads the state marker from dir (storage.Store interface).
//
// A missing marker is not an error: the directory simply has no Graphiti
// state yet. A marker that cannot be read or parsed is treated the same
// way, logged at warn level.
func (s *StateStorage) Load(ctx context.Context, dir string) (*state.State, error) {
	marker := markerPath(dir)
	s.metrics.IncStateLoads()

	data, err := os.ReadFile(marker)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("state marker unreadable",
				zap.String("dir", dir),
				zap.Error(err))
		}
		s.metrics.IncStateLoadMisses()
		return nil, nil
	}

	var st state.State
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Warn("state marker malformed",
			zap.String("dir", dir),
			zap.Error(err))
		s.metrics.IncStateLoadMisses()
		return nil, nil
	}

	return &st, nil
}

// Exists reports whether a state marker is present in dir (storage.Store interface)
func (s *StateStorage) Exists(ctx context.Context, dir string) (bool, error) {
	_, err := os.Stat(markerPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check marker: %w", err)
	}
	return true, nil
}

// markerPath returns the marker file path for a working directory
func markerPath(dir string) string {
	return filepath.Join(dir, state.MarkerFile)
}
