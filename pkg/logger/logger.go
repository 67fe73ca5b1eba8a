package logger

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// ZapLogger wraps zap logger to implement the Logger interface.
type ZapLogger struct {
	logger *zap.Logger
}

// New creates a new logger based on environment. ENVIRONMENT selects the
// development or production preset and LOG_LEVEL overrides the level.
func New() *ZapLogger {
	env := os.Getenv("ENVIRONMENT")

	cfg := DefaultConfig()
	if env == "" || env == "development" || env == "dev" {
		cfg = DevelopmentConfig()
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, convertFields(fields)...)
}

// Info logs an info message.
func (l *ZapLogger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, convertFields(fields)...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, convertFields(fields)...)
}

// Error logs an error message.
func (l *ZapLogger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, convertFields(fields)...)
}

// Fatal logs a fatal message and exits.
func (l *ZapLogger) Fatal(msg string, fields ...interfaces.Field) {
	l.logger.Fatal(msg, convertFields(fields)...)
}

// WithContext returns the logger stored in ctx, or l when there is none.
func (l *ZapLogger) WithContext(ctx context.Context) interfaces.Logger {
	if logger, ok := ctx.Value(loggerKey).(interfaces.Logger); ok {
		return logger
	}
	return l
}

// WithFields returns a logger with additional fields.
func (l *ZapLogger) WithFields(fields ...interfaces.Field) interfaces.Logger {
	return &ZapLogger{logger: l.logger.With(convertFields(fields)...)}
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// convertFields converts our custom fields to zap fields.
func convertFields(fields []interfaces.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		if err, ok := field.Value.(error); ok && field.Key == "error" {
			zapFields[i] = zap.Error(err)
			continue
		}
		zapFields[i] = zap.Any(field.Key, field.Value)
	}
	return zapFields
}

// String creates a string field.
func String(key, value string) interfaces.Field {
	return interfaces.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) interfaces.Field {
	return interfaces.Int(key, value)
}

// Error creates an error field.
func Error(err error) interfaces.Field {
	return interfaces.Error(err)
}

// Any creates a field with any value.
func Any(key string, value interface{}) interfaces.Field {
	return interfaces.Any(key, value)
}
