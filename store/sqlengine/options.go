package sqlengine

import (
	"github.com/AntonStoeckl/library-backend/store"
)

// Option defines a functional option for configuring the Repository.
type Option func(*Repository) error

// WithDialect sets the SQL dialect, "postgres" or "sqlite3".
// Repositories built from a pgxpool.Pool always use "postgres".
func WithDialect(dialect string) Option {
	return func(r *Repository) error {
		switch dialect {
		case DialectPostgres, DialectSQLite:
			r.dialect = dialect
			return nil
		default:
			return store.ErrUnsupportedDialect
		}
	}
}

// WithLogger sets the logger for the Repository.
//
// Debug level: SQL statements with execution timing (development use)
// Info level: row counts, durations, concurrency conflicts (production-safe)
// Warn level: cleanup problems like failed rollbacks
// Error level: failures that end an operation.
func WithLogger(logger store.Logger) Option {
	return func(r *Repository) error {
		r.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, which correlates log lines with the active trace.
func WithContextualLogger(logger store.ContextualLogger) Option {
	return func(r *Repository) error {
		r.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Repository.
func WithMetrics(collector store.MetricsCollector) Option {
	return func(r *Repository) error {
		r.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Repository.
func WithTracing(collector store.TracingCollector) Option {
	return func(r *Repository) error {
		r.tracingCollector = collector
		return nil
	}
}
