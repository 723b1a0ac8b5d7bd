package sqlengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-backend/store"
	"github.com/AntonStoeckl/library-backend/store/sqlengine/internal/adapters"
)

const (
	// DialectPostgres selects PostgreSQL syntax and migrations.
	DialectPostgres = "postgres"

	// DialectSQLite selects SQLite syntax and migrations.
	DialectSQLite = "sqlite3"
)

const (
	tableAuthors     = "authors"
	tableBooks       = "books"
	tableBookAuthors = "book_authors"
	tableCopies      = "copies"
	tableCustomers   = "customers"
	tableUsers       = "users"

	colName            = "name"
	colISBN            = "isbn"
	colTitle           = "title"
	colPublicationYear = "publication_year"
	colAuthorName      = "author_name"
	colPosition        = "position"
	colID              = "id"
	colStatus          = "status"
	colCustomerID      = "customer_id"
	colFirstName       = "first_name"
	colLastName        = "last_name"
	colEmail           = "email"
	colUsername        = "username"
	colPasswordHash    = "password_hash"
	colRole            = "role"
)

const (
	logMsgBuildQueryFailed    = "failed to build sql statement"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database statement execution failed"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgRowsAffectedFailed  = "failed to get rows affected count"
	logMsgRollbackFailed      = "failed to roll back transaction"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "store operation: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrDurationMS         = "duration_ms"
	logAttrRowsAffected       = "rows_affected"
	logAttrRowCount           = "row_count"
	logAttrOperation          = "operation"
	logAttrCopyID             = "copy_id"
	logAttrExpectedStatus     = "expected_status"
)

type sqlQueryString = string

// sqlBuilder is satisfied by all goqu datasets.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// Repository persists books, authors, copies, customers and users.
// It is safe for concurrent use as long as the underlying database handle is.
type Repository struct {
	db               adapters.DBAdapter
	dialect          string
	logger           store.Logger
	contextualLogger store.ContextualLogger
	metricsCollector store.MetricsCollector
	tracingCollector store.TracingCollector
}

// NewRepositoryFromPGXPool creates a new PostgreSQL Repository using a pgx Pool with optional configuration.
func NewRepositoryFromPGXPool(db *pgxpool.Pool, options ...Option) (*Repository, error) {
	if db == nil {
		return nil, store.ErrNilDatabaseConnection
	}

	return newRepository(adapters.NewPGXAdapter(db), DialectPostgres, options...)
}

// NewRepositoryFromPGXPoolWithReplica creates a new PostgreSQL Repository that sends
// eventually consistent reads to the replica pool.
func NewRepositoryFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Repository, error) {
	if db == nil || replica == nil {
		return nil, store.ErrNilDatabaseConnection
	}

	return newRepository(adapters.NewPGXAdapterWithReplica(db, replica), DialectPostgres, options...)
}

// NewRepositoryFromSQLDB creates a new Repository using a sql.DB with optional configuration.
// The dialect defaults to PostgreSQL, use WithDialect(DialectSQLite) for SQLite databases.
func NewRepositoryFromSQLDB(db *sql.DB, options ...Option) (*Repository, error) {
	if db == nil {
		return nil, store.ErrNilDatabaseConnection
	}

	return newRepository(adapters.NewSQLAdapter(db), DialectPostgres, options...)
}

// NewRepositoryFromSQLX creates a new Repository using a sqlx.DB with optional configuration.
func NewRepositoryFromSQLX(db *sqlx.DB, options ...Option) (*Repository, error) {
	if db == nil {
		return nil, store.ErrNilDatabaseConnection
	}

	return newRepository(adapters.NewSQLXAdapter(db), DialectPostgres, options...)
}

// NewRepositoryFromSQLXWithReplica creates a new Repository using a primary and a replica sqlx.DB.
func NewRepositoryFromSQLXWithReplica(db *sqlx.DB, replica *sqlx.DB, options ...Option) (*Repository, error) {
	if db == nil || replica == nil {
		return nil, store.ErrNilDatabaseConnection
	}

	return newRepository(adapters.NewSQLXAdapterWithReplica(db, replica), DialectPostgres, options...)
}

func newRepository(db adapters.DBAdapter, dialect string, options ...Option) (*Repository, error) {
	r := &Repository{
		db:      db,
		dialect: dialect,
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	if _, isPGX := db.(*adapters.PGXAdapter); isPGX && r.dialect != DialectPostgres {
		return nil, store.ErrUnsupportedDialect
	}

	return r, nil
}

// Dialect returns the SQL dialect the Repository renders statements for.
func (r *Repository) Dialect() string {
	return r.dialect
}

func (r *Repository) builder() goqu.DialectWrapper {
	return goqu.Dialect(r.dialect)
}

// inTx runs fn inside a transaction on the primary database.
// All statements of fn must use the given executor.
func (r *Repository) inTx(ctx context.Context, fn func(q adapters.Executor) error) error {
	tx, beginErr := r.db.Begin(ctx)
	if beginErr != nil {
		r.logErrorContext(ctx, logMsgDBExecFailed, beginErr)
		return errors.Join(store.ErrTransactionFailed, beginErr)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			r.logWarn(logMsgRollbackFailed, logAttrError, rollbackErr.Error())
		}

		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		r.logErrorContext(ctx, logMsgDBExecFailed, commitErr)
		return errors.Join(store.ErrTransactionFailed, mapConstraintError(commitErr))
	}

	return nil
}

// build renders a goqu dataset into an interpolated SQL string.
func (r *Repository) build(ctx context.Context, ds sqlBuilder) (sqlQueryString, error) {
	sqlQuery, _, buildErr := ds.ToSQL()
	if buildErr != nil {
		r.logErrorContext(ctx, logMsgBuildQueryFailed, buildErr)
		return "", errors.Join(store.ErrBuildingQueryFailed, buildErr)
	}

	return sqlQuery, nil
}

// query runs a select statement and returns the open rows, which the caller must close.
func (r *Repository) query(
	ctx context.Context,
	q adapters.Executor,
	action string,
	ds sqlBuilder,
) (adapters.DBRows, error) {

	sqlQuery, buildErr := r.build(ctx, ds)
	if buildErr != nil {
		return nil, buildErr
	}

	start := time.Now()
	rows, queryErr := q.Query(ctx, sqlQuery)
	r.logQueryWithDuration(ctx, sqlQuery, action, time.Since(start))

	if queryErr != nil {
		r.logErrorContext(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, errors.Join(store.ErrQueryingFailed, queryErr)
	}

	return rows, nil
}

// exec runs an insert, update or delete statement and returns the number of affected rows.
// Constraint violations are reported as store.ErrDuplicateKey or store.ErrReferenceViolation.
func (r *Repository) exec(
	ctx context.Context,
	q adapters.Executor,
	action string,
	ds sqlBuilder,
) (int64, error) {

	sqlQuery, buildErr := r.build(ctx, ds)
	if buildErr != nil {
		return 0, buildErr
	}

	start := time.Now()
	result, execErr := q.Exec(ctx, sqlQuery)
	r.logQueryWithDuration(ctx, sqlQuery, action, time.Since(start))

	if execErr != nil {
		r.logErrorContext(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, mapConstraintError(execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		r.logErrorContext(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, errors.Join(store.ErrExecutingFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// closeRows safely closes database rows and logs any errors.
func (r *Repository) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		r.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// scanErr wraps a scan failure.
func (r *Repository) scanErr(ctx context.Context, err error) error {
	r.logErrorContext(ctx, logMsgScanRowFailed, err)
	return errors.Join(store.ErrScanningDBRowFailed, err)
}

// count runs a "SELECT COUNT(*)" statement.
func (r *Repository) count(ctx context.Context, q adapters.Executor, action string, ds sqlBuilder) (int, error) {
	rows, err := r.query(ctx, q, action, ds)
	if err != nil {
		return 0, err
	}
	defer r.closeRows(rows)

	var total int64
	if rows.Next() {
		if scanErr := rows.Scan(&total); scanErr != nil {
			return 0, r.scanErr(ctx, scanErr)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return 0, errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	return int(total), nil
}
