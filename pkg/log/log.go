// Package log provides a leveled logger with structured logging support.
package log

import "context"

type ctxKey byte

const loggerContextKey ctxKey = iota

// std is the default logger.
var std = New()

// Default returns the standard logger. Prefer passing a logger explicitly; tests that
// share the default logger interfere with each other.
func Default() Logger {
	return std
}

// ContextWithLogger returns a copy of ctx carrying logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the logger stored in ctx, or the default logger.
func LoggerFromContext(ctx context.Context) Logger {
	if val := ctx.Value(loggerContextKey); val != nil {
		if logger, ok := val.(Logger); ok {
			return logger
		}
	}

	return std
}
