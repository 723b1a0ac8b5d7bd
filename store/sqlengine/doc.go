// Package sqlengine implements the library store on top of a relational database.
//
// Statements are built with goqu and run through one of three adapters: pgx (pgxpool.Pool),
// database/sql (sql.DB) or sqlx (sqlx.DB). PostgreSQL is the production database, SQLite
// (modernc.org/sqlite over database/sql) serves local development and the test suite.
//
// Every state change of a copy is a conditional update: it only succeeds if the row still has
// the status and the customer reference that the caller read before deciding. Otherwise
// store.ErrConcurrencyConflict is returned and the caller may read again and retry.
//
// Observability is optional and follows the store package interfaces: SQL statements are
// logged at debug level, operation summaries at info level, and every repository operation
// records a duration metric and a tracing span when a collector is configured.
package sqlengine
