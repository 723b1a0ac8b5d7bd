// Package adapters provide database adapter implementations for the relational library store.
//
// This package implements the adapter pattern to support multiple database libraries:
// pgxpool.Pool, sql.DB (Postgres via lib/pq, or SQLite via modernc.org/sqlite) and sqlx.DB.
// All adapters provide equivalent functionality through a common DBAdapter interface,
// including transactions, so the engine can write several tables atomically
// no matter which connection type the application was wired with.
//
// Reads are routed to an optional replica when the context asks for eventual consistency.
package adapters
