package config

import (
	"testing"
	"time"

	"launchdash/internal"
	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT", "DATA_FILE", "SUMMARY_CONFIDENCE", "LOG_LEVEL", "PPROF_PORT", "PPROF_ENABLED"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.InDelta(t, 0.95, cfg.Data.SummaryConfidence, 1e-9)
	assert.Equal(t, internal.LogLevelInfo, cfg.Logging.Level)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, DefaultPprofPort, cfg.Profiling.Port)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_FILE", "/data/launches.xlsx")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/data/launches.xlsx", cfg.Data.File)
	assert.Equal(t, internal.LogLevelDebug, cfg.Logging.Level)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"non numeric port", map[string]string{"PORT": "http"}},
		{"confidence out of range", map[string]string{"SUMMARY_CONFIDENCE": "1.5"}},
		{"unparseable confidence", map[string]string{"SUMMARY_CONFIDENCE": "abc"}},
		{"unparseable pprof flag", map[string]string{"PPROF_ENABLED": "yes"}},
		{"unparseable shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
		{"pprof on server port", map[string]string{"PPROF_ENABLED": "true", "PPROF_PORT": "8090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
