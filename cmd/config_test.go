package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "rocqtrace", configBaseName)
	assert.Equal(t, "rocqtrace.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "config_path", configPathKey)
	assert.Equal(t, "metrics.textfile", metricsTextfileKey)
	assert.Equal(t, 8765, defaultPort)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "ROCQTRACE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestWorkflowOptions_Defaults(t *testing.T) {
	opts := workflowOptions()

	assert.Equal(t, 5*time.Minute, opts.Extractor.TOCTimeout)
	assert.Equal(t, 2*time.Minute, opts.Extractor.ExtractTimeout)
	assert.InDelta(t, 0.8, opts.Extractor.MaxMemory, 1e-9)
	assert.Equal(t, 8765, opts.BasePort)
	assert.Equal(t, 1, opts.Parallel)
	assert.Equal(t, 250*time.Millisecond, opts.RecoverGrace)
	assert.Equal(t, 30*time.Second, opts.ServerStartTimeout)
	assert.False(t, opts.FailOnPackageError)
	assert.False(t, opts.Rebuild)
	assert.False(t, opts.KillClones)
	assert.Empty(t, opts.MetricsTextfile)
	assert.Equal(t, 30*time.Second, tacticTimeout())
}

func TestWorkflowOptions_Environment(t *testing.T) {
	t.Setenv("ROCQTRACE_MAX_MEMORY", "0.5")
	t.Setenv("ROCQTRACE_EXTRACT_TIMEOUT", "90s")
	t.Setenv("ROCQTRACE_METRICS_TEXTFILE", "/var/lib/node_exporter/rocqtrace.prom")

	opts := workflowOptions()

	assert.InDelta(t, 0.5, opts.Extractor.MaxMemory, 1e-9)
	assert.Equal(t, 90*time.Second, opts.Extractor.ExtractTimeout)
	assert.Equal(t, "/var/lib/node_exporter/rocqtrace.prom", opts.MetricsTextfile)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), "rocqtrace.log")

	configureLogger(logPath, true)
	slog.Debug("session recovered", "reason", "timeout")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "session recovered")
	assert.Contains(t, string(contents), "reason=timeout")
}
