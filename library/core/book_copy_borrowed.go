package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyBorrowedEventType is the event type identifier.
const BookCopyBorrowedEventType = "BookCopyBorrowed"

// BookCopyBorrowed represents when a customer borrowed an available copy directly, without a reservation.
type BookCopyBorrowed struct {
	CopyID     uuid.UUID
	ISBN       ISBNString
	CustomerID uuid.UUID
	OccurredAt OccurredAt
}

// BuildBookCopyBorrowed creates a new BookCopyBorrowed event.
func BuildBookCopyBorrowed(copyID uuid.UUID, isbn ISBNString, customerID uuid.UUID, occurredAt time.Time) BookCopyBorrowed {
	return BookCopyBorrowed{
		CopyID:     copyID,
		ISBN:       isbn,
		CustomerID: customerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyBorrowed) IsEventType() string {
	return BookCopyBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
