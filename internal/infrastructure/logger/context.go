package logger

import (
	"context"

	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
)

// WithContext returns a copy of ctx carrying logger
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, a no-op logger if none
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores requestID in ctx together with a logger tagged with it
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	tagged := logger.With(zap.String("request_id", requestID))
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return WithContext(ctx, tagged), tagged
}

// GetRequestID returns the request id stored in ctx
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// traceFields returns trace_id and span_id of the active span, if any
func traceFields(ctx context.Context) []zap.Field {
	traceID, spanID, ok := telemetry.TraceIDs(ctx)
	if !ok {
		return nil
	}
	return []zap.Field{zap.String("trace_id", traceID), zap.String("span_id", spanID)}
}

// L returns the logger of ctx correlated with the active trace span.
//
//	logger.L(ctx).Error("Failed to list records", zap.Error(err))
func L(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)
	if fields := traceFields(ctx); fields != nil {
		l = l.With(fields...)
	}
	return l
}
