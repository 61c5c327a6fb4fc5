package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer used for service spans
const TracerName = "backoffice"

// Span attribute keys shared by service spans
const (
	SpanAttrKind       = "record.kind"
	SpanAttrRecordID   = "record.id"
	SpanAttrRecordCode = "record.code"
	SpanAttrReport     = "report.name"
	SpanAttrRows       = "report.rows"
)

// WithAttribute builds a span attribute from a plain Go value.
// Stringers such as uuid.UUID are recorded by their string form.
func WithAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}

// StartSpan starts an internal span on the global provider. The caller ends it.
//
//	ctx, span := telemetry.StartSpan(ctx, "report.payment_source_balances")
//	defer span.End()
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// StartServiceSpan starts a span named {service}.{method}, e.g. "crud.create"
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, service+"."+method, attrs...)
}

// SetAttribute adds one attribute to span; a nil span is ignored
func SetAttribute(span trace.Span, key string, value any) {
	if span == nil {
		return
	}
	span.SetAttributes(WithAttribute(key, value))
}

// RecordError marks span failed with err. Nil spans and nil errors are ignored.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// TraceIDs returns the hex trace and span ids of the span active in ctx.
// ok is false when ctx carries no valid span context.
func TraceIDs(ctx context.Context) (traceID, spanID string, ok bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}
