package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"resume-builder/internal/config"
)

// New builds the process logger. Output goes to stderr so commands that
// print documents to stdout stay pipeable.
func New(cfg config.LogConfig) *slog.Logger {
	return NewWriter(os.Stderr, cfg)
}

func NewWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard is a logger for tests and for callers that passed nil.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
