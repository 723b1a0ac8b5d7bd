package core

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDetailsUpdatedEventType is the event type identifier.
const CustomerDetailsUpdatedEventType = "CustomerDetailsUpdated"

// CustomerDetailsUpdated represents when the name or email of a customer changed.
type CustomerDetailsUpdated struct {
	CustomerID uuid.UUID
	FirstName  string
	LastName   string
	Email      EmailString
	OccurredAt OccurredAt
}

// BuildCustomerDetailsUpdated creates a new CustomerDetailsUpdated event.
func BuildCustomerDetailsUpdated(customer Customer, occurredAt time.Time) CustomerDetailsUpdated {
	return CustomerDetailsUpdated{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// Customer returns the customer profile after the update.
func (e CustomerDetailsUpdated) Customer() Customer {
	return Customer{ID: e.CustomerID, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}
}

// IsEventType returns the event type identifier.
func (e CustomerDetailsUpdated) IsEventType() string {
	return CustomerDetailsUpdatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CustomerDetailsUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
