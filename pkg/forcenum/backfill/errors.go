package backfill

import (
	"errors"
	"fmt"
)

// Sentinel errors for job validation.
var (
	// ErrInvalidJob indicates a job with missing or conflicting fields.
	ErrInvalidJob = errors.New("invalid backfill job")

	// ErrInvalidIdentifier indicates a table or column name that is not a
	// plain SQL identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// Sentinel errors for execution.
var (
	// ErrNilContext indicates Run() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrTableNotFound indicates the job's table does not exist.
	ErrTableNotFound = errors.New("table not found")

	// ErrColumnNotFound indicates the source or target column does not exist.
	ErrColumnNotFound = errors.New("column not found")
)

// Error wraps errors from backfill operations.
type Error struct {
	// Table is the table being backfilled.
	Table string
	// Op is the operation that failed ("inspect", "scan", "update", "commit", "cancel").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("backfill %s on %s: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
