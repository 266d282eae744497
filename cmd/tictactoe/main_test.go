package main

import (
	"context"
	"ctchen222/terminal-tic-tac-toe/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// parseFlags runs the command with args and returns the config after flag overrides.
func parseFlags(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	var applyErr error
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		applyErr = applyFlags(c, cfg)
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"tictactoe"}, args...)))
	return cfg, applyErr
}

func TestApplyFlags_Overrides(t *testing.T) {
	cfg, err := parseFlags(t,
		"--difficulty", "medium",
		"--think-delay", "0s",
		"--log-level", "debug",
		"--log-file", "game.log",
		"--telemetry",
	)

	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, time.Duration(0), cfg.ThinkDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "game.log", cfg.LogFile)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestApplyFlags_KeepsLoadedValues(t *testing.T) {
	cfg, err := parseFlags(t)

	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, time.Second, cfg.ThinkDelay)
}

func TestApplyFlags_RejectsUnknownDifficulty(t *testing.T) {
	_, err := parseFlags(t, "--difficulty", "impossible")

	assert.ErrorContains(t, err, "invalid config")
}
