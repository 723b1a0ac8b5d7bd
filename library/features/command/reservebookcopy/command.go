package reservebookcopy

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "ReserveBookCopy"
)

// Command represents the intent to reserve an available copy of a book for a customer.
type Command struct {
	Actor      core.Actor
	CustomerID uuid.UUID
	ISBN       core.ISBNString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, customerID uuid.UUID, isbn core.ISBNString, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		CustomerID: customerID,
		ISBN:       isbn,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}
	fieldErrors.ValidateISBN("bookIsbn", c.ISBN)

	if c.CustomerID == uuid.Nil {
		fieldErrors.Add("customerId", "must not be empty")
	}

	return fieldErrors.Err()
}
