package logging

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithContext returns a child context whose logger adds attrs to every record,
// on top of any attributes ctx already carries
func WithContext(ctx context.Context, attrs ...any) context.Context {
	return context.WithValue(ctx, loggerKey{}, FromContext(ctx).With(attrs...))
}

// FromContext returns the logger stored by WithContext, or Logger
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return Logger
}
