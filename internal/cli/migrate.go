package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-backend/library/shell/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := config.NewLogger(cfg, os.Stderr)

			_, closeFn, err := openMigratedRepository(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer closeFn()

			ok(cmd.OutOrStdout(), "Schema of the %s database is up to date", cfg.DBDriver)

			return nil
		},
	}
}
