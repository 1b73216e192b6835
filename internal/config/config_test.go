package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "localhost", cfg.FalkorDBHost)
	assert.Equal(t, 6379, cfg.FalkorDBPort)
	assert.Empty(t, cfg.FalkorDBPassword)
	assert.Equal(t, "auto_build_memory", cfg.Database)
	assert.True(t, cfg.TelemetryEnabled)

	assert.Equal(t, ".", cfg.StateDir)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnabledSpellings(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"YES", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"on", false},
		{"enabled", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"GRAPHITI_ENABLED": tt.value})

			// Act
			cfg, err := Load()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Enabled)
		})
	}
}

func TestLoad_TelemetrySpellings(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"false", false},
		{"FALSE", false},
		{"False", false},
		{"0", false},
		{"no", false},
		{"NO", false},
		{"true", true},
		{"1", true},
		{"yes", true},
		{"off", true},
		{"disabled", true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"GRAPHITI_TELEMETRY_ENABLED": tt.value})

			// Act
			cfg, err := Load()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.TelemetryEnabled)
		})
	}
}

func TestLoad_PortFallback(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"valid", "7000", 7000},
		{"malformed", "not-a-number", 6379},
		{"empty", "", 6379},
		{"float", "6379.5", 6379},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"GRAPHITI_FALKORDB_PORT": tt.value})

			// Act
			cfg, err := Load()

			// Assert: malformed ports never fail the load
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.FalkorDBPort)
		})
	}
}

func TestLoad_ConnectionSettings(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"GRAPHITI_ENABLED":           "true",
		"OPENAI_API_KEY":             "sk-test",
		"GRAPHITI_FALKORDB_HOST":     "falkordb.internal",
		"GRAPHITI_FALKORDB_PORT":     "6380",
		"GRAPHITI_FALKORDB_PASSWORD": "s3cret",
		"GRAPHITI_DATABASE":          "project_memory",
	})

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "falkordb.internal", cfg.FalkorDBHost)
	assert.Equal(t, 6380, cfg.FalkorDBPort)
	assert.Equal(t, "s3cret", cfg.FalkorDBPassword)
	assert.Equal(t, "project_memory", cfg.Database)
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	tests := []string{"0", "-1", "70000"}

	for _, value := range tests {
		t.Run("port="+value, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"GRAPHITI_HTTP_PORT": value})

			// Act
			_, err := Load()

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), "HTTP port")
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"LOG_LEVEL": "verbose"})

	// Act
	_, err := Load()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		apiKey   string
		expected bool
	}{
		{"enabled with key", true, "sk-test", true},
		{"enabled without key", true, "", false},
		{"disabled with key", false, "sk-test", false},
		{"disabled without key", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Enabled: tt.enabled, OpenAIAPIKey: tt.apiKey}

			assert.Equal(t, tt.expected, cfg.IsValid())
		})
	}
}

func TestConnectionURI(t *testing.T) {
	t.Run("without password", func(t *testing.T) {
		cfg := &Config{FalkorDBHost: "localhost", FalkorDBPort: 6379}

		assert.Equal(t, "redis://localhost:6379", cfg.ConnectionURI())
	})

	t.Run("with password", func(t *testing.T) {
		cfg := &Config{
			FalkorDBHost:     "falkordb.internal",
			FalkorDBPort:     6380,
			FalkorDBPassword: "s3cret",
		}

		assert.Equal(t, "redis://:s3cret@falkordb.internal:6380", cfg.ConnectionURI())
	})
}

func TestRedisOptions(t *testing.T) {
	t.Run("without password", func(t *testing.T) {
		cfg := &Config{FalkorDBHost: "localhost", FalkorDBPort: 6379}

		opts, err := cfg.RedisOptions()

		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Empty(t, opts.Password)
	})

	t.Run("with password", func(t *testing.T) {
		cfg := &Config{
			FalkorDBHost:     "falkordb.internal",
			FalkorDBPort:     6380,
			FalkorDBPassword: "s3cret",
		}

		opts, err := cfg.RedisOptions()

		require.NoError(t, err)
		assert.Equal(t, "falkordb.internal:6380", opts.Addr)
		assert.Equal(t, "s3cret", opts.Password)
	})
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"GRAPHITI_ENABLED",
		"OPENAI_API_KEY",
		"GRAPHITI_FALKORDB_HOST",
		"GRAPHITI_FALKORDB_PORT",
		"GRAPHITI_FALKORDB_PASSWORD",
		"GRAPHITI_DATABASE",
		"GRAPHITI_TELEMETRY_ENABLED",
		"GRAPHITI_STATE_DIR",
		"GRAPHITI_HTTP_PORT",
		"GRAPHITI_SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv first so the original value is restored after the test
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
		}
		_ = os.Unsetenv(k)
	}
}
