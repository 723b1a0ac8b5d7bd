package addbookcopies

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "AddBookCopies"
)

// Command represents the intent to add copies of a book to the inventory.
// CopyIDs are generated up front so that a retried write stores the same copies.
type Command struct {
	Actor      core.Actor
	ISBN       core.ISBNString
	Quantity   int
	CopyIDs    []uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Copy ids are only generated for a quantity that passes validation.
func BuildCommand(actor core.Actor, isbn core.ISBNString, quantity int, occurredAt time.Time) Command {
	command := Command{
		Actor:      actor,
		ISBN:       strings.TrimSpace(isbn),
		Quantity:   quantity,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}

	if validQuantity(quantity) {
		command.CopyIDs = make([]uuid.UUID, 0, quantity)
		for range quantity {
			command.CopyIDs = append(command.CopyIDs, uuid.New())
		}
	}

	return command
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}

	fieldErrors.ValidateISBN("isbn", c.ISBN)
	fieldErrors.ValidateCopyQuantity("quantity", c.Quantity)

	return fieldErrors.Err()
}

func validQuantity(quantity int) bool {
	fieldErrors := core.FieldErrors{}
	fieldErrors.ValidateCopyQuantity("quantity", quantity)

	return len(fieldErrors) == 0
}
