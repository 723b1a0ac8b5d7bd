package core

import (
	"github.com/google/uuid"
)

// CopyStatus is the lifecycle status of a physical book copy.
type CopyStatus string

const (
	// CopyAvailable means the copy is on the shelf and can be reserved or borrowed.
	CopyAvailable CopyStatus = "AVAILABLE"

	// CopyReserved means the copy is held for a customer who has not picked it up yet.
	CopyReserved CopyStatus = "RESERVED"

	// CopyBorrowed means the copy is lent to a customer.
	CopyBorrowed CopyStatus = "BORROWED"

	// CopyLost means the copy is gone. There is no transition out of this status.
	CopyLost CopyStatus = "LOST"
)

// HoldsCustomer reports whether a copy in this status must reference a customer.
func (s CopyStatus) HoldsCustomer() bool {
	return s == CopyReserved || s == CopyBorrowed
}

// IsValid reports whether s is one of the known statuses.
func (s CopyStatus) IsValid() bool {
	switch s {
	case CopyAvailable, CopyReserved, CopyBorrowed, CopyLost:
		return true
	default:
		return false
	}
}

// Book is a catalog entry identified by its ISBN.
// Authors is a set, the order carries no meaning.
type Book struct {
	ISBN            ISBNString         `json:"isbn"`
	Title           string             `json:"title"`
	PublicationYear int                `json:"publicationYear"`
	Authors         []AuthorNameString `json:"authors"`
}

// Copy is one physical exemplar of a Book.
// CustomerID is valid if and only if Status is RESERVED or BORROWED.
type Copy struct {
	ID         uuid.UUID     `json:"id"`
	ISBN       ISBNString    `json:"bookIsbn"`
	Status     CopyStatus    `json:"status"`
	CustomerID uuid.NullUUID `json:"customerId"`
}

// IsHeldBy reports whether the copy is currently bound to the given customer.
func (c Copy) IsHeldBy(customerID uuid.UUID) bool {
	return c.CustomerID.Valid && c.CustomerID.UUID == customerID
}

// HasConsistentHolder reports whether the customer reference matches the status.
func (c Copy) HasConsistentHolder() bool {
	return c.CustomerID.Valid == c.Status.HoldsCustomer()
}

// Customer is a patron of the library. Email is optional but unique when present.
type Customer struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     EmailString `json:"email,omitempty"`
}

// User is a login account. Customers are linked to a Customer profile, librarians are not.
type User struct {
	ID           uuid.UUID     `json:"id"`
	Username     string        `json:"username"`
	PasswordHash string        `json:"-"`
	Role         Role          `json:"role"`
	CustomerID   uuid.NullUUID `json:"customerId"`
}

// NullableID wraps id into a valid uuid.NullUUID.
func NullableID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}
