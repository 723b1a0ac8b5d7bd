// Package cli implements the libraryd command line: the HTTP service and its admin tasks.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-backend/library/shell/config"
)

var (
	version = "dev"

	cfg config.Config

	flagNoColor bool
	flagEnvFile string
)

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	version = v
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "libraryd",
		Short: "Library management backend",
		Long: `libraryd runs the library HTTP API and its administrative tasks.

Configuration is read from LIBRARY_ prefixed environment variables,
optionally preloaded from a .env file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			color.NoColor = color.NoColor || flagNoColor

			var envFiles []string
			if flagEnvFile != "" {
				envFiles = append(envFiles, flagEnvFile)
			}

			loaded, err := config.Load(envFiles...)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			cfg = loaded

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Env file to load (default: .env)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newCreateLibrarianCmd(),
		newImportBooksCmd(),
	)

	return rootCmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
