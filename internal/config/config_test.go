package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "tictactoe.log", cfg.LogFile)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, time.Second, cfg.ThinkDelay)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "telemetry.log", cfg.Telemetry.File)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TTT_DIFFICULTY", "easy")
	t.Setenv("TTT_THINK_DELAY", "250ms")
	t.Setenv("TTT_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Difficulty)
	assert.Equal(t, 250*time.Millisecond, cfg.ThinkDelay)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
log-file: /tmp/ttt.log
difficulty: medium
think-delay: 500ms
telemetry:
  enabled: true
  file: /tmp/ttt-telemetry.log
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/ttt.log", cfg.LogFile)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, 500*time.Millisecond, cfg.ThinkDelay)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "/tmp/ttt-telemetry.log", cfg.Telemetry.File)
}

func TestLoad_InvalidDifficulty(t *testing.T) {
	path := writeConfig(t, "difficulty: impossible\n")

	_, err := Load(path)

	assert.ErrorContains(t, err, "invalid config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
}

func TestValidate_NegativeDelay(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.ThinkDelay = -time.Second

	assert.Error(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}

	for level, want := range tests {
		cfg := &Config{LogLevel: level}
		assert.Equal(t, want, cfg.SlogLevel(), "level %q", level)
	}
}
