package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured logger for demos and tools built on the guard.
// It writes to Stderr so log lines never interleave with payload output,
// and standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger. It backs the guard's default
// configuration, keeping best-effort cleanup fully silent unless a caller
// opts in via WithLogger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
