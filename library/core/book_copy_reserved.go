package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyReservedEventType is the event type identifier.
const BookCopyReservedEventType = "BookCopyReserved"

// BookCopyReserved represents when an available copy was reserved for a customer.
type BookCopyReserved struct {
	CopyID     uuid.UUID
	ISBN       ISBNString
	CustomerID uuid.UUID
	OccurredAt OccurredAt
}

// BuildBookCopyReserved creates a new BookCopyReserved event.
func BuildBookCopyReserved(copyID uuid.UUID, isbn ISBNString, customerID uuid.UUID, occurredAt time.Time) BookCopyReserved {
	return BookCopyReserved{
		CopyID:     copyID,
		ISBN:       isbn,
		CustomerID: customerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyReserved) IsEventType() string {
	return BookCopyReservedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReserved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
