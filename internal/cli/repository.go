package cli

import (
	"context"
	"log/slog"

	"github.com/AntonStoeckl/library-backend/library/shell/config"
	"github.com/AntonStoeckl/library-backend/store/sqlengine"
)

// openMigratedRepository opens the configured database for the admin tasks and brings the schema up to date.
func openMigratedRepository(ctx context.Context, logger *slog.Logger) (*sqlengine.Repository, func(), error) {
	repo, closeFn, err := config.OpenRepository(ctx, cfg, sqlengine.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if err := repo.Migrate(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}

	return repo, closeFn, nil
}
