package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New constructs the service JSON logger writing to stdout.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter builds the same logger on an arbitrary sink; the CLI logs to stderr
// so generated documents can be piped from stdout.
func NewWithWriter(w io.Writer) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "sitegen")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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
