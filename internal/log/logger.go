// Package log provides a thin slog wrapper with component tagging.
// All output goes to stderr so rendered terminal output stays clean.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component attribute.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing text-formatted records to w at the given level.
func New(w io.Writer, level slog.Level, component string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// Default returns a stderr logger at Info level.
func Default(component string) *Logger {
	return New(os.Stderr, slog.LevelInfo, component)
}

// Quiet returns a logger that only surfaces warnings and errors.
func Quiet(component string) *Logger {
	return New(os.Stderr, slog.LevelWarn, component)
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError, "test")
}

// WithComponent returns a derived logger tagged with a new component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}
