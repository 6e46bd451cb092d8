package backfill

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/forcenum/pkg/forcenum"
	"github.com/randalmurphal/forcenum/pkg/forcenum/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Report summarizes a backfill run.
type Report struct {
	RunID string
	Table string
	// Scanned counts every row read.
	Scanned int
	// Converted counts rows that received a number.
	Converted int
	// Rejected counts rows that received NULL.
	Rejected int
	// Batches counts committed (or, in dry-run mode, evaluated) batches.
	Batches  int
	Duration time.Duration
	DryRun   bool
}

// Runner applies forcenum to a column of a SQLite table.
// A Runner holds no per-run state and may be reused.
type Runner struct {
	db  *sql.DB
	cfg runConfig
}

// New creates a Runner over db.
func New(db *sql.DB, opts ...Option) *Runner {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{db: db, cfg: cfg}
}

// row is one key/value pair read from the source column.
type row struct {
	key   int64
	value any
}

// Run converts every value of job.Source and writes the result to
// job.Target, NULL where a value has no numeric interpretation.
//
// Rows are read in key order, job.BatchSize at a time, and each batch is
// written in its own transaction. The context is checked between batches;
// on cancellation the committed batches stay written and the returned
// Report describes them.
//
// Example:
//
//	db, _ := backfill.OpenSQLite("prices.db")
//	report, err := backfill.New(db, backfill.WithLogger(logger)).Run(ctx, backfill.Job{
//	    Table:  "listings",
//	    Source: "price_text",
//	    Target: "price",
//	})
func (r *Runner) Run(ctx context.Context, job Job) (report Report, runErr error) {
	if ctx == nil {
		return Report{}, ErrNilContext
	}

	job = job.withDefaults()
	if err := job.Validate(); err != nil {
		return Report{}, err
	}

	runID := r.cfg.runID
	if runID == "" {
		runID = uuid.New().String()
	}
	report = Report{RunID: runID, Table: job.Table, DryRun: r.cfg.dryRun}

	logger := observability.EnrichLogger(r.cfg.logger, runID, job.Table, job.Source)
	observability.LogBackfillStart(logger, runID, job.Table)

	startTime := time.Now()
	elapsedMs := observability.TimedOperation()
	lastKey := int64(math.MinInt64)

	runCtx, runSpan := r.cfg.spans.StartBackfillSpan(ctx, job.Table, runID)
	defer func() {
		report.Duration = time.Since(startTime)
		durationMs := elapsedMs()

		r.cfg.spans.EndSpanWithError(runSpan, runErr)
		r.cfg.metrics.RecordBackfill(ctx, job.Table, runErr == nil, report.Duration, int64(report.Scanned))

		if runErr != nil {
			observability.LogBackfillError(logger, runID, runErr, durationMs, lastKey)
		} else {
			observability.LogBackfillComplete(logger, runID, durationMs, report.Scanned, report.Rejected)
		}
	}()

	if err := r.prepare(runCtx, job); err != nil {
		return report, err
	}

	for {
		if err := runCtx.Err(); err != nil {
			return report, &Error{Table: job.Table, Op: "cancel", Err: err}
		}

		batchCtx, batchSpan := r.cfg.spans.StartBatchSpan(runCtx, job.Table, lastKey)
		rows, err := r.fetch(batchCtx, job, lastKey, report.Batches == 0)
		if err == nil && len(rows) > 0 {
			err = r.apply(batchCtx, logger, job, rows, &report)
		}
		r.cfg.spans.EndSpanWithError(batchSpan, err)
		if err != nil {
			return report, err
		}
		if len(rows) == 0 {
			break
		}

		report.Batches++
		lastKey = rows[len(rows)-1].key
		observability.LogBatch(logger, lastKey, len(rows))

		if len(rows) < job.BatchSize {
			break
		}
	}

	return report, nil
}

// prepare checks the job's columns against the table, adding the target
// column when the job asks for it.
func (r *Runner) prepare(ctx context.Context, job Job) error {
	cols, err := columns(ctx, r.db, job.Table)
	if err != nil {
		return &Error{Table: job.Table, Op: "inspect", Err: err}
	}

	if !cols[strings.ToLower(job.Source)] {
		return &Error{Table: job.Table, Op: "inspect", Err: fmt.Errorf("%w: %s", ErrColumnNotFound, job.Source)}
	}
	if cols[strings.ToLower(job.Target)] || r.cfg.dryRun {
		return nil
	}
	if !job.CreateTarget {
		return &Error{Table: job.Table, Op: "inspect", Err: fmt.Errorf("%w: %s", ErrColumnNotFound, job.Target)}
	}

	stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s REAL`, quote(job.Table), quote(job.Target))
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return &Error{Table: job.Table, Op: "inspect", Err: fmt.Errorf("add target column: %w", err)}
	}
	return nil
}

// fetch reads the next batch of rows with keys above afterKey. The first
// batch includes afterKey itself so a row keyed math.MinInt64 is not lost.
func (r *Runner) fetch(ctx context.Context, job Job, afterKey int64, first bool) ([]row, error) {
	cmp := ">"
	if first {
		cmp = ">="
	}
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s %s ? ORDER BY %s LIMIT ?`,
		quote(job.Key), quote(job.Source), quote(job.Table), quote(job.Key), cmp, quote(job.Key))

	rows, err := r.db.QueryContext(ctx, query, afterKey, job.BatchSize)
	if err != nil {
		return nil, &Error{Table: job.Table, Op: "scan", Err: err}
	}
	defer rows.Close()

	batch := make([]row, 0, job.BatchSize)
	for rows.Next() {
		var rw row
		if err := rows.Scan(&rw.key, &rw.value); err != nil {
			return nil, &Error{Table: job.Table, Op: "scan", Err: err}
		}
		batch = append(batch, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Table: job.Table, Op: "scan", Err: err}
	}
	return batch, nil
}

// apply converts a batch and, unless dry-running, writes it.
// The report is only updated once the batch is committed.
func (r *Runner) apply(ctx context.Context, logger *slog.Logger, job Job, rows []row, report *Report) error {
	var rejected int
	results := make([]sql.NullFloat64, len(rows))
	for i, rw := range rows {
		value := rw.value
		if b, ok := value.([]byte); ok {
			value = string(b)
		}

		kind := forcenum.KindOf(value).String()
		n := forcenum.ConvertOrNil(value, r.cfg.convertOpts...)
		r.cfg.metrics.RecordConversion(ctx, kind, n != nil)

		if n == nil {
			rejected++
			observability.LogRowRejected(logger, rw.key, kind)
			continue
		}
		results[i] = sql.NullFloat64{Float64: *n, Valid: true}
	}

	if !r.cfg.dryRun {
		attempts, err := retry(ctx, r.cfg.retry, isBusy, func(ctx context.Context) error {
			return r.write(ctx, job, rows, results)
		})
		if attempts > 1 {
			lastKey := rows[len(rows)-1].key
			observability.LogBatchRetried(logger, lastKey, attempts, err)
			r.cfg.spans.AddSpanEvent(ctx, "batch.retried", attribute.Int("attempts", attempts))
		}
		if err != nil {
			return err
		}
	}

	report.Scanned += len(rows)
	report.Converted += len(rows) - rejected
	report.Rejected += rejected
	return nil
}

// write stores one batch of results in a single transaction.
func (r *Runner) write(ctx context.Context, job Job, rows []row, results []sql.NullFloat64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &Error{Table: job.Table, Op: "update", Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`,
		quote(job.Table), quote(job.Target), quote(job.Key)))
	if err != nil {
		return &Error{Table: job.Table, Op: "update", Err: err}
	}
	defer stmt.Close()

	for i, rw := range rows {
		if _, err := stmt.ExecContext(ctx, results[i], rw.key); err != nil {
			return &Error{Table: job.Table, Op: "update", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &Error{Table: job.Table, Op: "commit", Err: err}
	}
	return nil
}
