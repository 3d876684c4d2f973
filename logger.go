package numvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with numvec-specific context.
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

var noopLogger = &Logger{
	Logger: slog.New(slog.DiscardHandler),
}

// NoopLogger returns a Logger that discards all log output.
// Use this to disable logging entirely. The returned Logger is shared.
func NoopLogger() *Logger {
	return noopLogger
}

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithLength adds a vector length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// LogInvalid logs a rejected construction or argument.
func (l *Logger) LogInvalid(err error) {
	l.Debug("rejected",
		"error", err,
	)
}

// LogSample logs a completed random draw of size elements.
func (l *Logger) LogSample(size int) {
	l.Debug("sampled",
		"size", size,
	)
}
