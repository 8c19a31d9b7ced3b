package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Attach stores base, extended with fields, as the request-scoped logger.
// Everything below reads it back with ctxzap.
func Attach(ctx context.Context, base *zap.Logger, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, base.With(fields...))
}

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return Attach(ctx, ctxzap.Extract(ctx), fields...)
}

// WithAction tags the context logger with the handler or command that owns
// the flow, plus any extra fields known up front.
func WithAction(ctx context.Context, action string, fields ...zap.Field) context.Context {
	return AddFields(ctx, append([]zap.Field{zap.String("action", action)}, fields...)...)
}
