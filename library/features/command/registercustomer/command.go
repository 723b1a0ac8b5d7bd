package registercustomer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "RegisterCustomer"
)

// Command represents the intent to register a new customer.
type Command struct {
	Actor      core.Actor
	Customer   core.Customer
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with a freshly generated customer id.
func BuildCommand(actor core.Actor, firstName, lastName string, email core.EmailString, occurredAt time.Time) Command {
	return Command{
		Actor: actor,
		Customer: core.Customer{
			ID:        uuid.New(),
			FirstName: strings.TrimSpace(firstName),
			LastName:  strings.TrimSpace(lastName),
			Email:     strings.TrimSpace(email),
		},
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}

	fieldErrors.ValidateRequired("firstName", c.Customer.FirstName)
	fieldErrors.ValidateRequired("lastName", c.Customer.LastName)
	fieldErrors.ValidateOptionalEmail("email", c.Customer.Email)

	return fieldErrors.Err()
}
