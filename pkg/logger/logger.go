// Package logger builds the slog.Logger shared by the server and CLI
// commands. Level and format come straight from the logging section of
// the config file.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing to stderr. Level is one of "debug",
// "info", "warn" or "error"; format is "json" or "text". Unrecognized
// values fall back to info and text.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with the output redirected, mainly for tests.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// ParseLevel maps a config level string to a slog.Level. Unknown
// strings map to info so a typo in the config never silences logs.
func ParseLevel(level string) slog.Level {
	switch level {
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
