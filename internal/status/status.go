package status

import (
	"github.com/loktar00/graphiti-state/internal/config"
)

// Unavailability reasons reported in the status summary.
const (
	ReasonNotEnabled = "GRAPHITI_ENABLED not set to true"
	ReasonMissingKey = "OPENAI_API_KEY not set (required for embeddings)"
)

// Summary describes the current Graphiti integration status.
type Summary struct {
	Enabled   bool   `json:"enabled"`
	Available bool   `json:"available"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Database  string `json:"database"`
	Reason    string `json:"reason"`
}

// Summarize derives the integration status from the configuration. It is a
// pure read: no file or network access.
func Summarize(cfg *config.Config) Summary {
	s := Summary{
		Enabled:  cfg.Enabled,
		Host:     cfg.FalkorDBHost,
		Port:     cfg.FalkorDBPort,
		Database: cfg.Database,
	}

	if !cfg.Enabled {
		s.Reason = ReasonNotEnabled
		return s
	}

	if cfg.OpenAIAPIKey == "" {
		s.Reason = ReasonMissingKey
		return s
	}

	s.Available = true
	return s
}

// Enabled is a quick check that the Graphiti integration is ready to use:
// enabled with an OpenAI API key set for embeddings.
func Enabled(cfg *config.Config) bool {
	return cfg.IsValid()
}
