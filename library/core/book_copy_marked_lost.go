package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyMarkedLostEventType is the event type identifier.
const BookCopyMarkedLostEventType = "BookCopyMarkedLost"

// BookCopyMarkedLost represents when a librarian declared a copy lost.
// PreviousHolder is set if the copy was reserved or borrowed at that time.
type BookCopyMarkedLost struct {
	CopyID         uuid.UUID
	ISBN           ISBNString
	PreviousStatus CopyStatus
	PreviousHolder uuid.NullUUID
	OccurredAt     OccurredAt
}

// BuildBookCopyMarkedLost creates a new BookCopyMarkedLost event.
func BuildBookCopyMarkedLost(copy Copy, occurredAt time.Time) BookCopyMarkedLost {
	return BookCopyMarkedLost{
		CopyID:         copy.ID,
		ISBN:           copy.ISBN,
		PreviousStatus: copy.Status,
		PreviousHolder: copy.CustomerID,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyMarkedLost) IsEventType() string {
	return BookCopyMarkedLostEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyMarkedLost) HasOccurredAt() time.Time {
	return e.OccurredAt
}
