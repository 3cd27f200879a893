package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a simwatch.yaml with the given content into a fresh
// temp directory and returns the directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "simwatch.yaml"), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	configDir := writeConfig(t, "{}\n")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, 300*time.Second, cfg.RefreshInterval)
	assert.Nil(t, cfg.IgnoreFilesLargerThan)
	assert.Nil(t, cfg.IgnoreFilesOlderThan)
	assert.NotNil(t, cfg.PluginSettings)

	assert.Equal(t, 60*time.Second, cfg.Scheduler.WakeupInterval)
	assert.Equal(t, time.Hour, cfg.Scheduler.CoursesInterval)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.AssignmentsInterval)
	assert.Equal(t, 10, cfg.Scheduler.AssignmentsBatchSize)
	assert.Equal(t, 2*time.Minute, cfg.Scheduler.DeadlineInterval)
	assert.Equal(t, 20, cfg.Scheduler.DeadlineBatchSize)
	assert.Equal(t, time.Hour, cfg.Scheduler.DeadlineWindowBefore)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.DeadlineWindowAfter)

	assert.Equal(t, 4, cfg.Pipeline.BatchSize)
	assert.Equal(t, 2, cfg.Pool.Workers)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
}

func TestInitializeOverrides(t *testing.T) {
	configDir := writeConfig(t, `
refresh_interval_seconds: 30
ignore_files_larger_than: 1048576
ignore_files_older_than_days: 90
scheduler:
  deadline_interval_seconds: 45
  deadline_batch_size: 5
pool:
  workers: 8
api:
  listen_addr: ":9000"
plugin_settings:
  plaintext:
    extensions: [".txt", ".go"]
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	require.NotNil(t, cfg.IgnoreFilesLargerThan)
	assert.Equal(t, int64(1048576), *cfg.IgnoreFilesLargerThan)
	require.NotNil(t, cfg.IgnoreFilesOlderThan)
	assert.Equal(t, 90*24*time.Hour, *cfg.IgnoreFilesOlderThan)

	assert.Equal(t, 45*time.Second, cfg.Scheduler.DeadlineInterval)
	assert.Equal(t, 5, cfg.Scheduler.DeadlineBatchSize)
	// Untouched sections keep defaults.
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.AssignmentsInterval)

	assert.Equal(t, 8, cfg.Pool.Workers)
	assert.Equal(t, ":9000", cfg.API.ListenAddr)

	require.Contains(t, cfg.PluginSettings, "plaintext")
	assert.Equal(t, []any{".txt", ".go"}, cfg.PluginSettings["plaintext"]["extensions"])
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("SIMWATCH_LISTEN", ":7777")
	configDir := writeConfig(t, `
api:
  listen_addr: "{{.SIMWATCH_LISTEN}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.API.ListenAddr)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, "refresh_interval_seconds: [not, a, number\n")

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"negative refresh", "refresh_interval_seconds: -1\n", "refresh_interval_seconds"},
		{"zero size limit", "ignore_files_larger_than: 0\n", "ignore_files_larger_than"},
		{"zero age limit", "ignore_files_older_than_days: 0\n", "ignore_files_older_than_days"},
		{"zero workers", "pool:\n  workers: -2\n", "pool.workers"},
		{"negative window", "scheduler:\n  deadline_window_after_seconds: -5\n", "scheduler.deadline_window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), configDir)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
