package config

import (
	"io"
	"log/slog"
)

// NewLogger creates a text slog.Logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
