package config

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-backend/store/sqlengine"
)

// OpenRepository connects to the configured database and builds the Repository on top of it.
// The returned close function releases all connections.
func OpenRepository(ctx context.Context, cfg Config, options ...sqlengine.Option) (*sqlengine.Repository, func(), error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		db, err := SQLiteDB(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}

		options = append([]sqlengine.Option{sqlengine.WithDialect(sqlengine.DialectSQLite)}, options...)
		repo, err := sqlengine.NewRepositoryFromSQLDB(db, options...)

		return closeOnError(repo, func() { _ = db.Close() }, err)

	case DriverPGX:
		pool, err := PostgresPGXPool(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}

		if cfg.DBReplicaDSN == "" {
			repo, repoErr := sqlengine.NewRepositoryFromPGXPool(pool, options...)
			return closeOnError(repo, pool.Close, repoErr)
		}

		replica, err := PostgresPGXPool(ctx, cfg.DBReplicaDSN)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		repo, err := sqlengine.NewRepositoryFromPGXPoolWithReplica(pool, replica, options...)

		return closeOnError(repo, func() { pool.Close(); replica.Close() }, err)

	case DriverSQLDB:
		db, err := PostgresSQLDB(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}

		repo, err := sqlengine.NewRepositoryFromSQLDB(db, options...)

		return closeOnError(repo, func() { _ = db.Close() }, err)

	case DriverSQLX:
		db, err := PostgresSQLX(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}

		if cfg.DBReplicaDSN == "" {
			repo, repoErr := sqlengine.NewRepositoryFromSQLX(db, options...)
			return closeOnError(repo, func() { _ = db.Close() }, repoErr)
		}

		replica, err := PostgresSQLX(ctx, cfg.DBReplicaDSN)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		repo, err := sqlengine.NewRepositoryFromSQLXWithReplica(db, replica, options...)

		return closeOnError(repo, func() { _ = db.Close(); _ = replica.Close() }, err)

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func closeOnError(repo *sqlengine.Repository, closeFn func(), err error) (*sqlengine.Repository, func(), error) {
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return repo, closeFn, nil
}
