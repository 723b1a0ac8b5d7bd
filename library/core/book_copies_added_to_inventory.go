package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopiesAddedToInventoryEventType is the event type identifier.
const BookCopiesAddedToInventoryEventType = "BookCopiesAddedToInventory"

// BookCopiesAddedToInventory represents when new physical copies of a book arrived.
// All new copies start AVAILABLE.
type BookCopiesAddedToInventory struct {
	ISBN       ISBNString
	CopyIDs    []uuid.UUID
	OccurredAt OccurredAt
}

// BuildBookCopiesAddedToInventory creates a new BookCopiesAddedToInventory event.
func BuildBookCopiesAddedToInventory(isbn ISBNString, copyIDs []uuid.UUID, occurredAt time.Time) BookCopiesAddedToInventory {
	return BookCopiesAddedToInventory{
		ISBN:       isbn,
		CopyIDs:    copyIDs,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// Copies returns the new copies described by the event.
func (e BookCopiesAddedToInventory) Copies() []Copy {
	copies := make([]Copy, 0, len(e.CopyIDs))
	for _, id := range e.CopyIDs {
		copies = append(copies, Copy{ID: id, ISBN: e.ISBN, Status: CopyAvailable})
	}

	return copies
}

// IsEventType returns the event type identifier.
func (e BookCopiesAddedToInventory) IsEventType() string {
	return BookCopiesAddedToInventoryEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopiesAddedToInventory) HasOccurredAt() time.Time {
	return e.OccurredAt
}
