package store

import (
	"errors"
)

var (
	// ErrNilDatabaseConnection is returned when a nil database handle is supplied to an engine constructor.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrUnsupportedDialect is returned when an engine is configured with an unknown SQL dialect.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")

	// ErrConcurrencyConflict is returned when a conditional write affected no rows.
	ErrConcurrencyConflict = errors.New("concurrency error, no rows were affected")

	// ErrDuplicateKey is returned when an insert or update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrBuildingQueryFailed is returned when goqu fails to render a statement.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingFailed is returned when a select statement fails.
	ErrQueryingFailed = errors.New("querying failed")

	// ErrExecutingFailed is returned when an insert, update or delete statement fails.
	ErrExecutingFailed = errors.New("executing statement failed")

	// ErrScanningDBRowFailed is returned when a result row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")

	// ErrTransactionFailed is returned when a transaction cannot be started or committed.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrMigrationFailed is returned when applying a schema migration fails.
	ErrMigrationFailed = errors.New("schema migration failed")

	// ErrReferenceViolation is returned when a write violates a foreign key constraint.
	ErrReferenceViolation = errors.New("foreign key reference violated")

	// ErrInconsistentCopyHolder is returned when a copy would be written with a customer reference
	// that does not match its status.
	ErrInconsistentCopyHolder = errors.New("copy customer reference does not match its status")
)
