// Package config loads CLI settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"

	"abi-input/input"
)

// Config holds settings shared by every command. Defaults come from the
// struct tags; flags may override them after Load.
type Config struct {
	// MaxDepth bounds record nesting during coercion. ENV: ABI_INPUT_MAX_DEPTH
	MaxDepth int `env:"ABI_INPUT_MAX_DEPTH,default=128"`
	// LogLevel is one of debug, info, warn, error. ENV: ABI_INPUT_LOG_LEVEL
	LogLevel string `env:"ABI_INPUT_LOG_LEVEL,default=info"`
	// LogFormat is text or json. ENV: ABI_INPUT_LOG_FORMAT
	LogFormat string `env:"ABI_INPUT_LOG_FORMAT,default=text"`
}

// Load decodes Config from the environment. A variable that cannot be parsed
// into its field is an error.
func Load() (Config, error) {
	var cfg Config

	err := envdecode.StrictDecode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// CoerceOptions returns the coercion options implied by the config.
func (c Config) CoerceOptions() input.Options {
	return input.Options{MaxDepth: c.MaxDepth}
}

// Logger builds a slog.Logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level

	if c.LogLevel != "" {
		err := level.UnmarshalText([]byte(c.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
}
