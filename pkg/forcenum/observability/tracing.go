package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the forcenum tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("forcenum")

// SpanManager opens and closes the spans of a backfill run.
// NoopSpanManager{} is used when tracing is off.
type SpanManager interface {
	// StartBackfillSpan starts a span for an entire backfill run.
	StartBackfillSpan(ctx context.Context, table, runID string) (context.Context, trace.Span)

	// StartBatchSpan starts a span for one batch.
	// The batch span should be a child of the backfill span.
	StartBatchSpan(ctx context.Context, table string, afterKey int64) (context.Context, trace.Span)

	// EndSpanWithError ends span, marking it failed when err is non-nil.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent records a named event on the span carried by ctx.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager starts spans from the package tracer.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager backed by the global OTel tracer
// provider. Install the provider first:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartBackfillSpan starts a span for the entire backfill run.
func (m *otelSpanManager) StartBackfillSpan(ctx context.Context, table, runID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "forcenum.backfill",
		trace.WithAttributes(
			attribute.String("db.table", table),
			attribute.String("run.id", runID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartBatchSpan starts a span for one batch.
func (m *otelSpanManager) StartBatchSpan(ctx context.Context, table string, afterKey int64) (context.Context, trace.Span) {
	return tracer.Start(ctx, "forcenum.batch",
		trace.WithAttributes(
			attribute.String("db.table", table),
			attribute.Int64("batch.after_key", afterKey),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError implements SpanManager.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent implements SpanManager.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// EndSpanWithError sets the span status from err and ends it.
// A nil span is ignored.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the recording span in ctx, if any.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
