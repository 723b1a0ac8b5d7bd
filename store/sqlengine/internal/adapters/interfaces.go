package adapters

import "context"

// Executor runs rendered SQL statements.
type Executor interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBAdapter defines the interface for database operations needed by the store engine.
type DBAdapter interface {
	Executor
	Begin(ctx context.Context) (DBTx, error)
}

// DBTx is a running transaction. Statements run on it are committed or rolled back together.
type DBTx interface {
	Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
