// Package store provides the common abstractions of the relational entity store
// behind the library backend.
//
// This package defines the error definitions shared by all store engines,
// the dependency-free observability interfaces (Logger, ContextualLogger, MetricsCollector,
// TracingCollector) that engines and command handlers report to,
// and the consistency level context helpers used to route reads to a replica.
//
// The concrete engine lives in store/sqlengine. It stores books, authors, copies,
// customers and users with goqu-built SQL on Postgres (pgx, database/sql, sqlx) or SQLite.
//
// Copies are written with optimistic concurrency: the engine only updates a copy row
// if it still has the status and the customer the caller has read before.
// Otherwise, it returns ErrConcurrencyConflict, which command handlers retry.
//
//	bookCopy, found, err := repo.FindCopy(ctx, copyID)
//	// decide about the next state ...
//	err = repo.TransitionCopy(ctx, bookCopy, nextState)
//	if errors.Is(err, store.ErrConcurrencyConflict) {
//		// somebody else changed the copy in between, retry
//	}
package store
