// Package logging wraps log/slog with search-specific helpers so that the
// engine, the scenario packages and the CLI emit events with consistent
// field names.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lvsearch-specific context.
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

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil writer means stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil writer means stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithRun tags every subsequent record with a run identifier.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run", id)}
}

// WithStrategy tags every subsequent record with a strategy name.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{Logger: l.Logger.With("strategy", name)}
}

// LogExpand logs a single node expansion.
func (l *Logger) LogExpand(ctx context.Context, state any, priority, cost float64, children, frontier int) {
	l.DebugContext(ctx, "expand",
		"state", state,
		"priority", priority,
		"cost", cost,
		"children", children,
		"frontier", frontier,
	)
}

// LogSearch logs the end of a search call.
func (l *Logger) LogSearch(ctx context.Context, outcome string, expanded, discovered int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"outcome", outcome,
			"expanded", expanded,
			"discovered", discovered,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"outcome", outcome,
		"expanded", expanded,
		"discovered", discovered,
	)
}

// LogStopped logs a search halted by a caller limit. The partial result is
// a normal outcome, so it is reported at info level.
func (l *Logger) LogStopped(ctx context.Context, reason string, expanded, discovered int) {
	l.InfoContext(ctx, "search stopped",
		"reason", reason,
		"expanded", expanded,
		"discovered", discovered,
	)
}
