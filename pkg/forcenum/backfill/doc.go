// Package backfill fills a numeric column of a SQLite table from a column of
// messy values using forcenum.
//
// A Job names the table, the source column with raw values and the target
// column that receives the numbers. Values with no numeric interpretation are
// written as NULL, so the target column ends up holding exactly what
// forcenum.ConvertOrNil returns for each source value.
//
// # Basic Usage
//
//	db, err := backfill.OpenSQLite("listings.db")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	report, err := backfill.New(db).Run(ctx, backfill.Job{
//	    Table:        "listings",
//	    Source:       "price_text",
//	    Target:       "price",
//	    CreateTarget: true,
//	})
//
// # Batching
//
// Rows are paged by an integer key column (rowid unless Job.Key says
// otherwise) and written one transaction per batch. A cancelled context stops
// the run between batches; batches already committed remain, and re-running
// the job rewrites them with the same values.
//
// # Configuration
//
// JobFromConfig reads a Job and its decimal symbol from a config.Config,
// typically a section of a YAML file:
//
//	backfill:
//	  table: listings
//	  source: price_text
//	  target: price
//	  batch_size: 1000
//	  decimal_symbol: ","
//
// # Observability
//
// WithLogger, WithMetrics and WithTracing attach slog logging and
// OpenTelemetry metrics and spans. All three are off by default.
package backfill
