package removebook

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "RemoveBookFromCatalog"
)

// Command represents the intent to remove a book from the catalog.
type Command struct {
	Actor      core.Actor
	ISBN       core.ISBNString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, isbn core.ISBNString, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		ISBN:       strings.TrimSpace(isbn),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}
	fieldErrors.ValidateISBN("isbn", c.ISBN)

	return fieldErrors.Err()
}
