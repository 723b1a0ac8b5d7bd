package updatebook

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "UpdateBookInCatalog"
)

// Command represents the intent to replace the details of a cataloged book.
type Command struct {
	Actor      core.Actor
	Book       core.Book
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Title and ISBN are trimmed, author names are trimmed and deduplicated.
func BuildCommand(actor core.Actor, book core.Book, occurredAt time.Time) Command {
	return Command{
		Actor: actor,
		Book: core.Book{
			ISBN:            strings.TrimSpace(book.ISBN),
			Title:           strings.TrimSpace(book.Title),
			PublicationYear: book.PublicationYear,
			Authors:         core.NormalizeAuthors(book.Authors),
		},
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}

	fieldErrors.ValidateISBN("isbn", c.Book.ISBN)
	fieldErrors.ValidateRequired("title", c.Book.Title)
	fieldErrors.ValidatePublicationYear("publicationYear", c.Book.PublicationYear)
	fieldErrors.ValidateAuthors("authors", c.Book.Authors)

	return fieldErrors.Err()
}
