package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyReturnedEventType is the event type identifier.
const BookCopyReturnedEventType = "BookCopyReturned"

// BookCopyReturned represents when a customer returned a borrowed copy.
type BookCopyReturned struct {
	CopyID     uuid.UUID
	ISBN       ISBNString
	CustomerID uuid.UUID
	OccurredAt OccurredAt
}

// BuildBookCopyReturned creates a new BookCopyReturned event.
func BuildBookCopyReturned(copyID uuid.UUID, isbn ISBNString, customerID uuid.UUID, occurredAt time.Time) BookCopyReturned {
	return BookCopyReturned{
		CopyID:     copyID,
		ISBN:       isbn,
		CustomerID: customerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyReturned) IsEventType() string {
	return BookCopyReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
