package sqlengine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-backend/store"
	"github.com/AntonStoeckl/library-backend/store/sqlengine/internal/adapters"
	"github.com/AntonStoeckl/library-backend/store/sqlengine/migrations"
)

const (
	tableSchemaMigrations = "schema_migrations"
	colAppliedAt          = "applied_at"
	migrateUpMarker       = "-- +migrate Up"
	migrateDownMarker     = "-- +migrate Down"
	logMsgMigrationDone   = "migration applied"
	logAttrMigration      = "migration"
)

// Migrate applies the embedded schema migrations of the Repository's dialect.
// Each file runs at most once, in its own transaction, in lexical file name order.
func (r *Repository) Migrate(ctx context.Context) (err error) {
	ctx, finish := r.observe(ctx, operationMigrate)
	defer func() { finish(err) }()

	migrationFS, root := r.migrationSource()

	files, readErr := migrationFiles(migrationFS, root)
	if readErr != nil {
		return errors.Join(store.ErrMigrationFailed, readErr)
	}

	if _, execErr := r.db.Exec(ctx, r.createMigrationTableSQL()); execErr != nil {
		r.logErrorContext(ctx, logMsgDBExecFailed, execErr)
		return errors.Join(store.ErrMigrationFailed, execErr)
	}

	for _, name := range files {
		if applyErr := r.applyMigration(ctx, migrationFS, root, name); applyErr != nil {
			return errors.Join(store.ErrMigrationFailed, fmt.Errorf("migration %s: %w", name, applyErr))
		}
	}

	return nil
}

func (r *Repository) migrationSource() (fs.FS, string) {
	if r.dialect == DialectSQLite {
		return migrations.SQLite, "sqlite"
	}

	return migrations.Postgres, "postgres"
}

func (r *Repository) createMigrationTableSQL() string {
	return "CREATE TABLE IF NOT EXISTS " + tableSchemaMigrations + " (" +
		colName + " TEXT PRIMARY KEY, " +
		colAppliedAt + " BIGINT NOT NULL)"
}

func (r *Repository) applyMigration(ctx context.Context, migrationFS fs.FS, root, name string) error {
	applied, checkErr := r.isMigrationApplied(ctx, name)
	if checkErr != nil {
		return checkErr
	}

	if applied {
		return nil
	}

	content, readErr := fs.ReadFile(migrationFS, path.Join(root, name))
	if readErr != nil {
		return readErr
	}

	statements := splitStatements(extractUpMigration(string(content)))

	txErr := r.inTx(ctx, func(q adapters.Executor) error {
		for _, statement := range statements {
			start := time.Now()
			_, execErr := q.Exec(ctx, statement)
			r.logQueryWithDuration(ctx, statement, operationMigrate, time.Since(start))

			if execErr != nil {
				r.logErrorContext(ctx, logMsgDBExecFailed, execErr, logAttrMigration, name)
				return execErr
			}
		}

		_, recordErr := r.exec(ctx, q, operationMigrate, r.builder().
			Insert(tableSchemaMigrations).
			Rows(goqu.Record{colName: name, colAppliedAt: time.Now().UTC().UnixMilli()}))

		return recordErr
	})
	if txErr != nil {
		return txErr
	}

	r.logOperation(ctx, logMsgMigrationDone, logAttrMigration, name)

	return nil
}

func (r *Repository) isMigrationApplied(ctx context.Context, name string) (bool, error) {
	total, err := r.count(ctx, r.db, operationMigrate, r.builder().
		From(tableSchemaMigrations).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C(colName).Eq(name)))
	if err != nil {
		return false, err
	}

	return total > 0, nil
}

func migrationFiles(migrationFS fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}

// extractUpMigration returns the SQL between the Up marker and the optional Down marker.
func extractUpMigration(content string) string {
	upIdx := strings.Index(content, migrateUpMarker)
	if upIdx == -1 {
		return content
	}

	content = content[upIdx+len(migrateUpMarker):]
	if downIdx := strings.Index(content, migrateDownMarker); downIdx != -1 {
		content = content[:downIdx]
	}

	return content
}

// splitStatements splits a migration into single statements.
// Migrations must not contain semicolons inside string literals.
func splitStatements(content string) []string {
	parts := strings.Split(content, ";")
	statements := make([]string, 0, len(parts))

	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}

	return statements
}
