package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyReservationCanceledEventType is the event type identifier.
const BookCopyReservationCanceledEventType = "BookCopyReservationCanceled"

// BookCopyReservationCanceled represents when a reservation was undone and the copy is available again.
type BookCopyReservationCanceled struct {
	CopyID     uuid.UUID
	ISBN       ISBNString
	CustomerID uuid.UUID
	OccurredAt OccurredAt
}

// BuildBookCopyReservationCanceled creates a new BookCopyReservationCanceled event.
func BuildBookCopyReservationCanceled(copyID uuid.UUID, isbn ISBNString, customerID uuid.UUID, occurredAt time.Time) BookCopyReservationCanceled {
	return BookCopyReservationCanceled{
		CopyID:     copyID,
		ISBN:       isbn,
		CustomerID: customerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyReservationCanceled) IsEventType() string {
	return BookCopyReservationCanceledEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReservationCanceled) HasOccurredAt() time.Time {
	return e.OccurredAt
}
