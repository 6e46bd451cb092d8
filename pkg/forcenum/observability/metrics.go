package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records forcenum metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConversion records one conversion by input kind and outcome.
	RecordConversion(ctx context.Context, kind string, ok bool)

	// RecordBackfill records a backfill run completion.
	RecordBackfill(ctx context.Context, table string, success bool, duration time.Duration, rows int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	conversions     metric.Int64Counter
	failures        metric.Int64Counter
	backfillRuns    metric.Int64Counter
	backfillLatency metric.Float64Histogram
	backfillRows    metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("forcenum")

	conversions, err := meter.Int64Counter("forcenum.conversions",
		metric.WithDescription("Number of values converted"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("forcenum.conversion.failures",
		metric.WithDescription("Number of values without a numeric interpretation"),
	)
	if err != nil {
		return nil, err
	}

	backfillRuns, err := meter.Int64Counter("forcenum.backfill.runs",
		metric.WithDescription("Number of backfill runs"),
	)
	if err != nil {
		return nil, err
	}

	backfillLatency, err := meter.Float64Histogram("forcenum.backfill.latency_ms",
		metric.WithDescription("Backfill run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	backfillRows, err := meter.Int64Histogram("forcenum.backfill.rows",
		metric.WithDescription("Rows scanned per backfill run"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		conversions:     conversions,
		failures:        failures,
		backfillRuns:    backfillRuns,
		backfillLatency: backfillLatency,
		backfillRows:    backfillRows,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConversion records a conversion.
func (m *otelMetrics) RecordConversion(ctx context.Context, kind string, ok bool) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("ok", ok),
	)
	m.conversions.Add(ctx, 1, attrs)

	if !ok {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// RecordBackfill records a backfill run.
func (m *otelMetrics) RecordBackfill(ctx context.Context, table string, success bool, duration time.Duration, rows int64) {
	attrs := metric.WithAttributes(
		attribute.String("table", table),
		attribute.Bool("success", success),
	)
	m.backfillRuns.Add(ctx, 1, attrs)
	m.backfillLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.backfillRows.Record(ctx, rows, attrs)
}
