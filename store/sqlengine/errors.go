package sqlengine

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/AntonStoeckl/library-backend/store"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapConstraintError classifies a failed write for the callers of the Repository.
func mapConstraintError(err error) error {
	switch {
	case isUniqueViolation(err):
		return errors.Join(store.ErrDuplicateKey, err)
	case isForeignKeyViolation(err):
		return errors.Join(store.ErrReferenceViolation, err)
	default:
		return errors.Join(store.ErrExecutingFailed, err)
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgForeignKeyViolation
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

// errorType returns a low-cardinality label for metrics and spans.
func errorType(err error) string {
	switch {
	case errors.Is(err, store.ErrConcurrencyConflict):
		return errorTypeConcurrencyConflict
	case errors.Is(err, store.ErrDuplicateKey):
		return errorTypeDuplicateKey
	case errors.Is(err, store.ErrReferenceViolation):
		return errorTypeReferenceViolation
	case errors.Is(err, store.ErrBuildingQueryFailed):
		return errorTypeBuildQuery
	case errors.Is(err, store.ErrScanningDBRowFailed):
		return errorTypeRowScan
	case errors.Is(err, store.ErrTransactionFailed):
		return errorTypeTransaction
	default:
		return errorTypeDatabase
	}
}
