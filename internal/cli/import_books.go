package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbook"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbookcopies"
	"github.com/AntonStoeckl/library-backend/library/shell/config"
	"github.com/AntonStoeckl/library-backend/store/sqlengine"
)

// CatalogFile is the YAML layout read by import-books.
type CatalogFile struct {
	Books []CatalogEntry `yaml:"books"`
}

// CatalogEntry is one book of a CatalogFile, with the number of copies to put on the shelf.
type CatalogEntry struct {
	ISBN            string   `yaml:"isbn"`
	Title           string   `yaml:"title"`
	PublicationYear int      `yaml:"publicationYear"`
	Authors         []string `yaml:"authors"`
	Copies          int      `yaml:"copies"`
}

// ImportSummary counts the outcome of an import.
type ImportSummary struct {
	Added   int
	Skipped int
	Failed  int
	Copies  int
}

func newImportBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-books <catalog.yml>",
		Short: "Add books and copies from a YAML catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := readCatalogFile(args[0])
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg, os.Stderr)

			repo, closeFn, err := openMigratedRepository(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer closeFn()

			summary := importBooks(cmd.Context(), repo, catalog, cmd.OutOrStdout())
			header(cmd.OutOrStdout(), "%d added, %d skipped, %d failed, %d copies", summary.Added, summary.Skipped, summary.Failed, summary.Copies)

			if summary.Failed > 0 {
				return fmt.Errorf("%d books could not be imported", summary.Failed)
			}

			return nil
		},
	}
}

func readCatalogFile(path string) (CatalogFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return CatalogFile{}, err
	}

	var catalog CatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return CatalogFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return catalog, nil
}

// importBooks adds every entry through the catalog features. Books already in the catalog are skipped,
// their copies are not added again.
func importBooks(ctx context.Context, repo *sqlengine.Repository, catalog CatalogFile, out io.Writer) ImportSummary {
	books := addbook.NewCommandHandler(repo)
	copies := addbookcopies.NewCommandHandler(repo)
	actor := bootstrapActor()

	var summary ImportSummary

	for _, entry := range catalog.Books {
		book := core.Book{
			ISBN:            entry.ISBN,
			Title:           entry.Title,
			PublicationYear: entry.PublicationYear,
			Authors:         entry.Authors,
		}

		_, err := books.Handle(ctx, addbook.BuildCommand(actor, book, time.Now()))
		switch {
		case errors.Is(err, core.ErrConflict):
			warn(out, "%s is already cataloged, skipping", entry.ISBN)
			summary.Skipped++

			continue
		case err != nil:
			warn(out, "%s: %v", entry.ISBN, err)
			summary.Failed++

			continue
		}

		summary.Added++

		if entry.Copies > 0 {
			if _, err := copies.Handle(ctx, addbookcopies.BuildCommand(actor, entry.ISBN, entry.Copies, time.Now())); err != nil {
				warn(out, "%s: adding %d copies: %v", entry.ISBN, entry.Copies, err)
				summary.Failed++

				continue
			}

			summary.Copies += entry.Copies
		}

		ok(out, "%s %q", entry.ISBN, entry.Title)
	}

	return summary
}
