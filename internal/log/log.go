// Package log provides structured logging for the falcon core. It wraps
// Go's log/slog with a per-module child-logger convenience, matching the
// pattern subsystems of a larger client use to get their own contextual
// logger without standing up a logging framework.
//
// The core only logs from the keygen and signing retry loops, and only at
// Debug level, so the surface here is deliberately narrower than a
// general-purpose logging package: two constructors (New, NewWithHandler),
// one way to scope a logger to a subsystem, and Debug.
package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger returned by Default.
var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo)
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler. This
// is useful for testing or for writing to a custom destination.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger tagged with an additional "module"
// attribute. keys.go and sign.go each call this once, to separate keygen's
// retry log lines from signing's.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// Debug logs at LevelDebug, the only level the retry loops use.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
