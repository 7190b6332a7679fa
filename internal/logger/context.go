package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext extracts a logger from the context.
// Returns zap.NewNop() if no logger is found.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithFields returns a context whose logger carries the extra fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	return ContextWithLogger(ctx, FromContext(ctx).With(fields...))
}

// WithPathParams attaches bound route parameters (epoch, country, region, city)
// to the context logger, so every query log line names what was asked for.
// Extra names or values without a partner are ignored.
func WithPathParams(ctx context.Context, names, values []string) context.Context {
	n := min(len(names), len(values))
	fields := make([]zap.Field, 0, n)
	for i := range n {
		fields = append(fields, zap.String(names[i], values[i]))
	}
	return WithFields(ctx, fields...)
}
