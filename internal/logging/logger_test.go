package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/beanport/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, config.LoggingConfig{Level: "warn"})

	log.Info("hidden")
	log.Warn("shown", "file", "rbc.csv")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "file=rbc.csv")
}

func TestNewLoggerWithSystem(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerWithSystem(&buf, config.LoggingConfig{Level: "debug"}, "import").Debug("scan")
	assert.Contains(t, buf.String(), "system=import")
	assert.Contains(t, buf.String(), "msg=scan")
}
