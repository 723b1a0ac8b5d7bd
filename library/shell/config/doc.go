// Package config loads the service configuration from the environment and builds the
// database connections and the OpenTelemetry providers from it.
//
// Supported database drivers are "sqlite" (modernc.org/sqlite), "pgx" (pgxpool.Pool),
// "sqldb" (database/sql over lib/pq) and "sqlx" (sqlx over lib/pq).
package config
