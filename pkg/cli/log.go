// Package cli implements the arrange command-line interface.
//
// # Commands
//
//   - run: arrange a scene once and print it as a drawing, table, JSON or YAML
//   - preview: arrange a scene live in the terminal, following resizes
//   - scenes: list the builtin scenes
//   - export: write a builtin scene as TOML or YAML to start a custom one
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// and the loaded configuration are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"gitlab.com/tinyland/lab/arrange/pkg/config"
)

// newLogger creates a logger writing to w at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the config in ctx, or the defaults.
func configFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey).(*config.Config); ok {
		return c
	}
	return config.DefaultConfig()
}
