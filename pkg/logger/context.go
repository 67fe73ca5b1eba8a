package logger

import (
	"context"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

type contextKey struct{}

var loggerKey = contextKey{}

// FromContext retrieves a logger from the context. An importer run without
// a logger in its context stays silent rather than building one.
func FromContext(ctx context.Context) interfaces.Logger {
	if logger, ok := ctx.Value(loggerKey).(interfaces.Logger); ok {
		return logger
	}
	return NewNoop()
}

// WithContext adds a logger to the context.
func WithContext(ctx context.Context, logger interfaces.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields adds fields to the logger in the context.
func WithFields(ctx context.Context, fields ...interfaces.Field) context.Context {
	return WithContext(ctx, FromContext(ctx).WithFields(fields...))
}
