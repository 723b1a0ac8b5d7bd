package updatecustomer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "UpdateCustomerDetails"
)

// Command represents the intent to replace names and email of a customer.
type Command struct {
	Actor      core.Actor
	Customer   core.Customer
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	actor core.Actor,
	customerID uuid.UUID,
	firstName, lastName string,
	email core.EmailString,
	occurredAt time.Time,
) Command {

	return Command{
		Actor: actor,
		Customer: core.Customer{
			ID:        customerID,
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

	if c.Customer.ID == uuid.Nil {
		fieldErrors.Add("customerId", "must not be empty")
	}

	fieldErrors.ValidateRequired("firstName", c.Customer.FirstName)
	fieldErrors.ValidateRequired("lastName", c.Customer.LastName)
	fieldErrors.ValidateOptionalEmail("email", c.Customer.Email)

	return fieldErrors.Err()
}
