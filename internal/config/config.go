package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/redis/go-redis/v9"
)

// Default FalkorDB connection values
const (
	DefaultFalkorDBHost = "localhost"
	DefaultFalkorDBPort = 6379
	DefaultDatabase     = "auto_build_memory"
)

// Config holds all configuration for the Graphiti integration
type Config struct {
	// Graphiti integration settings
	Enabled      bool
	OpenAIAPIKey string

	// FalkorDB connection settings
	FalkorDBHost     string
	FalkorDBPort     int
	FalkorDBPassword string
	Database         string
	TelemetryEnabled bool

	// StateDir is the working directory whose state marker the status
	// server reads
	StateDir string

	// Server configuration
	HTTPPort int
	LogLevel string

	// Timeouts
	ShutdownTimeout time.Duration
}

// rawConfig carries the environment values before the loose boolean and
// port conversions are applied. The Graphiti flags are deliberately kept as
// strings: malformed values fall back to defaults instead of failing.
type rawConfig struct {
	Enabled          string `env:"GRAPHITI_ENABLED"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	FalkorDBHost     string `env:"GRAPHITI_FALKORDB_HOST" envDefault:"localhost"`
	FalkorDBPort     string `env:"GRAPHITI_FALKORDB_PORT" envDefault:"6379"`
	FalkorDBPassword string `env:"GRAPHITI_FALKORDB_PASSWORD"`
	Database         string `env:"GRAPHITI_DATABASE" envDefault:"auto_build_memory"`
	TelemetryEnabled string `env:"GRAPHITI_TELEMETRY_ENABLED" envDefault:"true"`

	StateDir string `env:"GRAPHITI_STATE_DIR" envDefault:"."`

	HTTPPort int    `env:"GRAPHITI_HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	ShutdownTimeout time.Duration `env:"GRAPHITI_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	raw := &rawConfig{}
	if err := env.Parse(raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{
		Enabled:          parseOptIn(raw.Enabled),
		OpenAIAPIKey:     raw.OpenAIAPIKey,
		FalkorDBHost:     raw.FalkorDBHost,
		FalkorDBPort:     parsePort(raw.FalkorDBPort),
		FalkorDBPassword: raw.FalkorDBPassword,
		Database:         raw.Database,
		TelemetryEnabled: parseOptOut(raw.TelemetryEnabled),
		StateDir:         raw.StateDir,
		HTTPPort:         raw.HTTPPort,
		LogLevel:         raw.LogLevel,
		ShutdownTimeout:  raw.ShutdownTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// parseOptIn parses an opt-in flag: true only for the accepted true
// spellings, anything else is false.
func parseOptIn(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// parseOptOut parses an opt-out flag: false only for the accepted false
// spellings, anything else is true.
func parseOptOut(s string) bool {
	switch strings.ToLower(s) {
	case "false", "0", "no":
		return false
	}
	return true
}

// parsePort converts a port value, falling back to the default on malformed
// input. Connection settings never fail the load.
func parsePort(s string) int {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultFalkorDBPort
	}
	return port
}

// Validate checks the server-side configuration. The Graphiti connection
// settings are not validated here: readiness is reported via IsValid and
// the status summary instead.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.StateDir == "" {
		return fmt.Errorf("state directory is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// IsValid reports whether the config has the minimum required values for
// operation: the integration must be enabled and an OpenAI API key must be
// set for embeddings.
func (c *Config) IsValid() bool {
	return c.Enabled && c.OpenAIAPIKey != ""
}

// ConnectionURI returns the FalkorDB connection URI. The password segment
// is embedded only when a password is set.
func (c *Config) ConnectionURI() string {
	if c.FalkorDBPassword != "" {
		return fmt.Sprintf("redis://:%s@%s:%d", c.FalkorDBPassword, c.FalkorDBHost, c.FalkorDBPort)
	}
	return fmt.Sprintf("redis://%s:%d", c.FalkorDBHost, c.FalkorDBPort)
}

// RedisOptions builds the go-redis client options for the FalkorDB
// endpoint. FalkorDB speaks the redis protocol; the options are built from
// the connection URI so the eventual client sees exactly what the URI
// describes. No connection is made here.
func (c *Config) RedisOptions() (*redis.Options, error) {
	opts, err := redis.ParseURL(c.ConnectionURI())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URI: %w", err)
	}
	return opts, nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
