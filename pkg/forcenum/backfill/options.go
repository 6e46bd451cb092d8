package backfill

import (
	"log/slog"

	"github.com/randalmurphal/forcenum/pkg/forcenum"
	"github.com/randalmurphal/forcenum/pkg/forcenum/observability"
)

// runConfig holds configuration for a Runner.
type runConfig struct {
	runID       string
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	convertOpts []forcenum.Option
	retry       RetryPolicy
	dryRun      bool
}

// defaultRunConfig returns the default configuration: no logging, no-op
// metrics and tracing, default conversion options, DefaultRetry.
func defaultRunConfig() runConfig {
	return runConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		retry:   DefaultRetry,
	}
}

// Option configures a Runner.
type Option func(*runConfig)

// WithRunID sets the run ID reported in logs, spans and the Report.
// Default: a random UUID per Run.
func WithRunID(id string) Option {
	return func(c *runConfig) {
		c.runID = id
	}
}

// WithLogger enables structured logging.
// Batches and rejected values are logged at DEBUG level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics enables or disables OpenTelemetry metrics.
func WithMetrics(enabled bool) Option {
	return func(c *runConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a custom metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(c *runConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables or disables OpenTelemetry tracing.
func WithTracing(enabled bool) Option {
	return func(c *runConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a custom span manager.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(c *runConfig) {
		if sm != nil {
			c.spans = sm
		}
	}
}

// WithConvertOptions sets the options passed to forcenum for every value.
//
// Example:
//
//	runner := backfill.New(db, backfill.WithConvertOptions(forcenum.WithDecimalSymbol(',')))
func WithConvertOptions(opts ...forcenum.Option) Option {
	return func(c *runConfig) {
		c.convertOpts = opts
	}
}

// WithDryRun converts and counts every value without writing anything.
func WithDryRun(enabled bool) Option {
	return func(c *runConfig) {
		c.dryRun = enabled
	}
}

// WithRetry sets how a batch write is retried while the database is locked.
// Use NoRetry to fail on the first busy error.
func WithRetry(p RetryPolicy) Option {
	return func(c *runConfig) {
		c.retry = p
	}
}
