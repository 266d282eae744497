package main

import (
	"context"
	"ctchen222/terminal-tic-tac-toe/internal/bot"
	"ctchen222/terminal-tic-tac-toe/internal/config"
	"ctchen222/terminal-tic-tac-toe/internal/logger"
	"ctchen222/terminal-tic-tac-toe/internal/telemetry"
	"ctchen222/terminal-tic-tac-toe/internal/terminal"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "tictactoe",
		Usage: "play tic-tac-toe against a computer that never loses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("TTT_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Usage: "computer strength: easy, medium or hard",
			},
			&cli.DurationFlag{
				Name:  "think-delay",
				Usage: "pause before showing the computer's move",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "file that receives the game log",
			},
			&cli.BoolFlag{
				Name:  "telemetry",
				Usage: "write traces, metrics and logs to the telemetry file",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	if cfg.Telemetry.Enabled {
		telemetryFile, err := os.OpenFile(cfg.Telemetry.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open telemetry file: %w", err)
		}
		defer telemetryFile.Close()

		shutdown, err := telemetry.Init(ctx, telemetryFile)
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("Error shutting down telemetry", "error", err)
			}
		}()
	}

	logger.Init(logFile, cfg.SlogLevel())

	calc, err := bot.NewMoveCalculator()
	if err != nil {
		return err
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	driver := terminal.NewDriver(os.Stdin, os.Stdout, calc, terminal.Options{
		Difficulty:  cfg.Difficulty,
		ThinkDelay:  cfg.ThinkDelay,
		ClearScreen: isTerminal,
		Color:       isTerminal,
	})

	if _, err := driver.Run(ctx); err != nil {
		if errors.Is(err, terminal.ErrInputClosed) {
			slog.Info("input closed before the game ended")
			return nil
		}
		return err
	}
	return nil
}

// applyFlags overrides loaded values with the flags given on the command line.
func applyFlags(cmd *cli.Command, cfg *config.Config) error {
	if cmd.IsSet("difficulty") {
		cfg.Difficulty = cmd.String("difficulty")
	}
	if cmd.IsSet("think-delay") {
		cfg.ThinkDelay = cmd.Duration("think-delay")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}
	if cmd.IsSet("telemetry") {
		cfg.Telemetry.Enabled = cmd.Bool("telemetry")
	}
	return cfg.Validate()
}
