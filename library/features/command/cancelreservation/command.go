package cancelreservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "CancelReservation"
)

// Command represents the intent to cancel a reservation.
type Command struct {
	Actor      core.Actor
	CopyID     uuid.UUID
	CustomerID uuid.UUID
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, copyID uuid.UUID, customerID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		CopyID:     copyID,
		CustomerID: customerID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}

	if c.CopyID == uuid.Nil {
		fieldErrors.Add("copyId", "must not be empty")
	}

	if c.CustomerID == uuid.Nil {
		fieldErrors.Add("customerId", "must not be empty")
	}

	return fieldErrors.Err()
}
