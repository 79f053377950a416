package logger

import (
	"io"
	"log/slog"
	"os"
)

// Initialize installs the default slog logger: JSON in production, text
// otherwise, written to stderr.
func Initialize(production bool, level slog.Level) *slog.Logger {
	return New(os.Stderr, production, level)
}

// New builds a logger writing to w and sets it as the slog default.
func New(w io.Writer, production bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "production", production, "level", level)

	return logger
}
