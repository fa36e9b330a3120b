// Package logging builds the CLI's structured logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cleared-dev/beanport/internal/config"
)

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger creates a text logger writing to w at the configured level.
func NewLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}))
}

// NewLoggerWithSystem scopes a logger to one subsystem, e.g. "import".
func NewLoggerWithSystem(w io.Writer, cfg config.LoggingConfig, system string) *slog.Logger {
	return NewLogger(w, cfg).With("system", system)
}
