package wordgrid

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with wordgrid-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithKind adds a strategy field to the logger.
func (l *Logger) WithKind(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", string(kind)),
	}
}

// WithGrid adds the grid shape to the logger.
func (l *Logger) WithGrid(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogBuild logs the construction of a solver.
func (l *Logger) LogBuild(ctx context.Context, kind Kind, elapsed time.Duration, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"strategy", string(kind),
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"strategy", string(kind),
			"elapsed", elapsed,
			"size_bytes", size,
		)
	}
}

// LogQuery logs a single occurrence query.
func (l *Logger) LogQuery(ctx context.Context, kind Kind, wordLen, occurrences int, elapsed time.Duration) {
	l.DebugContext(ctx, "query completed",
		"strategy", string(kind),
		"word_len", wordLen,
		"occurrences", occurrences,
		"elapsed", elapsed,
	)
}

// LogBatch logs a batch of queries.
func (l *Logger) LogBatch(ctx context.Context, kind Kind, words int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch query aborted",
			"strategy", string(kind),
			"words", words,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch query completed",
			"strategy", string(kind),
			"words", words,
		)
	}
}
