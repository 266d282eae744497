package config

import (
	"ctchen222/terminal-tic-tac-toe/internal/validator"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile    string        `yaml:"log-file" env:"TTT_LOG_FILE" env-default:"tictactoe.log" validate:"required"`
	Difficulty string        `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"hard" validate:"difficulty"`
	ThinkDelay time.Duration `yaml:"think-delay" env:"TTT_THINK_DELAY" env-default:"1s" validate:"gte=0"`
	Telemetry  Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled bool   `yaml:"enabled" env:"TTT_TELEMETRY_ENABLED" env-default:"false"`
	File    string `yaml:"file" env:"TTT_TELEMETRY_FILE" env-default:"telemetry.log" validate:"required_if=Enabled true"`
}

// Load reads the configuration from the YAML file at path, or from the
// environment alone when path is empty, and validates it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel into a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
