package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyCheckedOutEventType is the event type identifier.
const BookCopyCheckedOutEventType = "BookCopyCheckedOut"

// BookCopyCheckedOut represents when a librarian handed out a copy at the desk.
// WasReserved tells whether the copy had been reserved by the same customer before.
type BookCopyCheckedOut struct {
	CopyID      uuid.UUID
	ISBN        ISBNString
	CustomerID  uuid.UUID
	WasReserved bool
	OccurredAt  OccurredAt
}

// BuildBookCopyCheckedOut creates a new BookCopyCheckedOut event.
func BuildBookCopyCheckedOut(
	copyID uuid.UUID,
	isbn ISBNString,
	customerID uuid.UUID,
	wasReserved bool,
	occurredAt time.Time,
) BookCopyCheckedOut {

	return BookCopyCheckedOut{
		CopyID:      copyID,
		ISBN:        isbn,
		CustomerID:  customerID,
		WasReserved: wasReserved,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyCheckedOut) IsEventType() string {
	return BookCopyCheckedOutEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyCheckedOut) HasOccurredAt() time.Time {
	return e.OccurredAt
}
