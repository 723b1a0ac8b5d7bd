package core

import (
	"time"

	"github.com/google/uuid"
)

// CustomerRegisteredEventType is the event type identifier.
const CustomerRegisteredEventType = "CustomerRegistered"

// CustomerRegistered represents when a new customer profile was created.
type CustomerRegistered struct {
	CustomerID uuid.UUID
	FirstName  string
	LastName   string
	Email      EmailString
	OccurredAt OccurredAt
}

// BuildCustomerRegistered creates a new CustomerRegistered event.
func BuildCustomerRegistered(customer Customer, occurredAt time.Time) CustomerRegistered {
	return CustomerRegistered{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// Customer returns the customer profile described by the event.
func (e CustomerRegistered) Customer() Customer {
	return Customer{ID: e.CustomerID, FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}
}

// IsEventType returns the event type identifier.
func (e CustomerRegistered) IsEventType() string {
	return CustomerRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e CustomerRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
