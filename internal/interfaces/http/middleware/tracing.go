// Package middleware provides the HTTP middleware of the back-office API.
package middleware

import (
	"net/http"
	"slices"

	"github.com/erp/backoffice/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
	// TracerProvider overrides the global provider when set.
	TracerProvider trace.TracerProvider
	// SkipPaths are request paths that get no span, such as /health.
	SkipPaths []string
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "backoffice",
		Enabled:     true,
		SkipPaths:   []string{"/health"},
	}
}

// TracingWithConfig returns the otelgin middleware for cfg. The span name is
// "METHOD route", e.g. "GET /api/v1/vendors/:id".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	opts := []otelgin.Option{
		otelgin.WithFilter(func(r *http.Request) bool {
			return !slices.Contains(cfg.SkipPaths, r.URL.Path)
		}),
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}
	return otelgin.Middleware(cfg.ServiceName, opts...)
}

// SpanErrorMarker tags the request span with the request id and marks it as
// an error for 4xx and 5xx responses. Place it after the tracing middleware.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if id := c.GetString(logger.GinRequestIDKey); id != "" {
				span.SetAttributes(attribute.String("request_id", id))
			}
		}

		c.Next()

		if !span.IsRecording() {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}
		span.SetStatus(codes.Error, statusDescription(status))
		span.SetAttributes(attribute.Int("http.status_code", status))
		if len(c.Errors) > 0 {
			span.SetAttributes(attribute.StringSlice("gin.errors", c.Errors.Errors()))
		}
	}
}

func statusDescription(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "Internal Server Error"
	case status == http.StatusNotFound:
		return "Not Found"
	case status == http.StatusConflict:
		return "Conflict"
	default:
		return "Client Error"
	}
}
