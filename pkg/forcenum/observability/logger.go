// Package observability provides opt-in observability for forcenum's
// batch tooling: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// The conversion functions themselves never log or record anything; callers
// such as the backfill runner do. All features have no-op implementations.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds backfill context to a logger.
// Returns a new logger with run_id, table, and column fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "orders", "amount_raw")
//	enriched.Info("doing work") // includes run_id, table, column
func EnrichLogger(logger *slog.Logger, runID, table, column string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("table", table),
		slog.String("column", column),
	)
}

// LogBackfillStart logs the start of a backfill run.
func LogBackfillStart(logger *slog.Logger, runID, table string) {
	if logger == nil {
		return
	}
	logger.Info("backfill starting",
		slog.String("run_id", runID),
		slog.String("table", table),
	)
}

// LogBackfillComplete logs successful backfill completion.
func LogBackfillComplete(logger *slog.Logger, runID string, durationMs float64, scanned, rejected int) {
	if logger == nil {
		return
	}
	logger.Info("backfill completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("rows_scanned", scanned),
		slog.Int("rows_rejected", rejected),
	)
}

// LogBackfillError logs backfill failure.
func LogBackfillError(logger *slog.Logger, runID string, err error, durationMs float64, lastKey int64) {
	if logger == nil {
		return
	}
	logger.Error("backfill failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
		slog.Int64("last_key", lastKey),
	)
}

// LogBatch logs a committed batch.
func LogBatch(logger *slog.Logger, lastKey int64, rows int) {
	if logger == nil {
		return
	}
	logger.Debug("batch committed",
		slog.Int64("last_key", lastKey),
		slog.Int("rows", rows),
	)
}

// LogBatchRetried logs a batch write that needed more than one attempt.
// err is the final error, nil if the last attempt succeeded.
func LogBatchRetried(logger *slog.Logger, lastKey int64, attempts int, err error) {
	if logger == nil {
		return
	}
	attrs := []any{
		slog.Int64("last_key", lastKey),
		slog.Int("attempts", attempts),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.Warn("batch write retried", attrs...)
}

// LogRowRejected logs a value that has no numeric interpretation.
func LogRowRejected(logger *slog.Logger, key int64, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("value rejected",
		slog.Int64("key", key),
		slog.String("kind", kind),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
