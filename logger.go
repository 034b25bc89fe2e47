package bitvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLength adds a length_bits field to the logger.
func (l *Logger) WithLength(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length_bits", bits),
	}
}

// WithCapacity adds a capacity_bytes field to the logger.
func (l *Logger) WithCapacity(bytes int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity_bytes", bytes),
	}
}

// LogGrow logs a storage growth.
func (l *Logger) LogGrow(oldCapacity, newCapacity, lengthBits int, err error) {
	if err != nil {
		l.WithLength(lengthBits).Error("storage growth failed",
			"old_capacity", oldCapacity,
			"error", err,
		)
		return
	}
	if oldCapacity == newCapacity {
		return
	}
	l.WithLength(lengthBits).Debug("storage grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
	)
}

// LogRelease logs the release of a storage region.
func (l *Logger) LogRelease(capacity int, err error) {
	if err != nil {
		l.WithCapacity(capacity).Warn("storage release failed",
			"error", err,
		)
		return
	}
	l.WithCapacity(capacity).Debug("storage released")
}
