package backfill

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/randalmurphal/forcenum/pkg/forcenum"
	"github.com/randalmurphal/forcenum/pkg/forcenum/config"
)

// Defaults applied to zero-valued Job fields.
const (
	DefaultKey       = "rowid"
	DefaultBatchSize = 500
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Job describes one column backfill.
type Job struct {
	// Table holds the rows to convert.
	Table string
	// Source is the column with the raw values.
	Source string
	// Target is the column that receives the numbers, or NULL.
	Target string
	// Key is a unique integer column used to page through the table; rows
	// sharing a key value may be skipped. Default: rowid
	Key string
	// BatchSize is the number of rows per transaction. Default: 500
	BatchSize int
	// CreateTarget adds Target as a REAL column when it does not exist.
	CreateTarget bool
}

// withDefaults fills in Key and BatchSize.
func (j Job) withDefaults() Job {
	if j.Key == "" {
		j.Key = DefaultKey
	}
	if j.BatchSize == 0 {
		j.BatchSize = DefaultBatchSize
	}
	return j
}

// Validate checks that the job can be turned into SQL safely.
// Zero Key and BatchSize are allowed; Run fills in the defaults.
func (j Job) Validate() error {
	j = j.withDefaults()

	if j.Table == "" {
		return fmt.Errorf("%w: table is required", ErrInvalidJob)
	}
	if j.Source == "" {
		return fmt.Errorf("%w: source column is required", ErrInvalidJob)
	}
	if j.Target == "" {
		return fmt.Errorf("%w: target column is required", ErrInvalidJob)
	}
	// SQLite column names are case-insensitive.
	if strings.EqualFold(j.Source, j.Target) {
		return fmt.Errorf("%w: source %q and target %q are the same column", ErrInvalidJob, j.Source, j.Target)
	}
	if strings.EqualFold(j.Key, j.Target) {
		return fmt.Errorf("%w: key %q and target %q are the same column", ErrInvalidJob, j.Key, j.Target)
	}
	if j.BatchSize < 0 {
		return fmt.Errorf("%w: batch size %d", ErrInvalidJob, j.BatchSize)
	}

	for _, name := range []string{j.Table, j.Source, j.Target, j.Key} {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	return nil
}

// JobFromConfig builds a Job from a config section.
//
// Recognized keys: table, source, target, key, batch_size, create_target
// and decimal_symbol. The returned options carry the decimal symbol and are
// meant for WithConvertOptions.
//
// Example:
//
//	cfg, _ := config.FromFile("backfill.yaml")
//	job, opts, err := backfill.JobFromConfig(cfg.Section("backfill"))
//	report, err := backfill.New(db, backfill.WithConvertOptions(opts...)).Run(ctx, job)
func JobFromConfig(cfg config.Config) (Job, []forcenum.Option, error) {
	opts, err := cfg.ConvertOptions()
	if err != nil {
		return Job{}, nil, err
	}

	job := Job{
		Table:        cfg.String("table", ""),
		Source:       cfg.String("source", ""),
		Target:       cfg.String("target", ""),
		Key:          cfg.String("key", ""),
		BatchSize:    cfg.Int("batch_size", 0),
		CreateTarget: cfg.Bool("create_target", false),
	}
	if err := job.Validate(); err != nil {
		return Job{}, nil, err
	}
	return job, opts, nil
}

// quote returns a validated identifier as a quoted SQL identifier.
func quote(name string) string {
	return `"` + name + `"`
}
