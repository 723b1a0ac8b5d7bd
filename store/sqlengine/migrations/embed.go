// Package migrations embeds the schema of the library store, one directory per SQL dialect.
package migrations

import "embed"

// Postgres holds the ordered migration files for PostgreSQL.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the ordered migration files for SQLite.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
