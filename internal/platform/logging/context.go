package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a private key type to prevent collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithOperationLogger derives an operation-scoped logger enriched with a
// unique operation id and the workflow name, and stores it in the context.
func WithOperationLogger(ctx context.Context, baseLogger *slog.Logger, operation string) context.Context {
	opLogger := baseLogger.With(
		slog.String("operation_id", uuid.NewString()),
		slog.String("operation", operation),
	)
	return WithLogger(ctx, opLogger)
}

// FromContext retrieves the scoped logger from the context, or nil if absent.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return nil
}
