package primecache

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with primecache-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWidth adds an integer-width field to the logger (32 or 64).
func (l *Logger) WithWidth(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", bits),
	}
}

// LogNextPrime logs a frontier extension.
func (l *Logger) LogNextPrime(p uint64, duration time.Duration, err error) {
	if err != nil {
		l.Error("next prime failed",
			"error", err,
		)
	} else {
		l.Debug("frontier extended",
			"prime", p,
			"duration", duration,
		)
	}
}

// LogPrimality logs a primality query.
func (l *Logger) LogPrimality(n uint64, strategy Strategy, prime bool, duration time.Duration) {
	l.Debug("primality decided",
		"n", n,
		"strategy", string(strategy),
		"prime", prime,
		"duration", duration,
	)
}

// LogLoad logs a cache load at engine construction.
func (l *Logger) LogLoad(ctx context.Context, name string, count int, seeded bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cache load failed",
			"name", name,
			"error", err,
		)
	} else if seeded {
		l.InfoContext(ctx, "no cache data, frontier seeded",
			"name", name,
			"count", count,
		)
	} else {
		l.InfoContext(ctx, "cache loaded",
			"name", name,
			"count", count,
		)
	}
}

// LogSave logs a cache save.
func (l *Logger) LogSave(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cache save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "cache saved",
			"name", name,
			"count", count,
		)
	}
}
