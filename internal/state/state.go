package state

import (
	"time"
)

// MarkerFile is the name of the state marker stored in each working directory.
const MarkerFile = ".graphiti_state.json"

// Episode types for the different memory categories Graphiti tracks.
const (
	EpisodeTypeSessionInsight    = "session_insight"
	EpisodeTypeCodebaseDiscovery = "codebase_discovery"
	EpisodeTypePattern           = "pattern"
	EpisodeTypeGotcha            = "gotcha"
)

const (
	// maxErrorLogEntries is the retained window of the error log.
	maxErrorLogEntries = 10

	// maxErrorMessageLen caps a single recorded error message.
	maxErrorMessageLen = 500
)

// ErrorEntry is a single timestamped entry in the error log.
type ErrorEntry struct {
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
}

// State is the Graphiti integration state for one working directory.
type State struct {
	Initialized  bool         `json:"initialized"`
	Database     *string      `json:"database"`
	IndicesBuilt bool         `json:"indices_built"`
	CreatedAt    *string      `json:"created_at"`
	LastSession  *int         `json:"last_session"`
	EpisodeCount int          `json:"episode_count"`
	ErrorLog     []ErrorEntry `json:"error_log"`
}

// New returns a fresh, uninitialized state.
func New() *State {
	return &State{
		ErrorLog: []ErrorEntry{},
	}
}

// RecordError appends a timestamped entry to the error log. The message is
// truncated to 500 characters and the log keeps only the last 10 entries,
// oldest evicted first.
func (s *State) RecordError(msg string) {
	// Truncate by runes, not bytes, so the stored message is always
	// valid UTF-8 and survives the JSON round trip
	if len(msg) > maxErrorMessageLen {
		if runes := []rune(msg); len(runes) > maxErrorMessageLen {
			msg = string(runes[:maxErrorMessageLen])
		}
	}

	s.ErrorLog = append(s.ErrorLog, ErrorEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Error:     msg,
	})

	if n := len(s.ErrorLog); n > maxErrorLogEntries {
		s.ErrorLog = append([]ErrorEntry(nil), s.ErrorLog[n-maxErrorLogEntries:]...)
	}
}

// Compact returns a copy of the state with the error log capped to the
// retained window. Storage adapters persist the compacted form so markers
// written by older versions never grow past the cap.
func (s *State) Compact() *State {
	out := *s

	log := s.ErrorLog
	if n := len(log); n > maxErrorLogEntries {
		log = log[n-maxErrorLogEntries:]
	}

	out.ErrorLog = append([]ErrorEntry{}, log...)
	return &out
}
