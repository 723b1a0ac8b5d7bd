package core

import (
	"time"
)

// BookUpdatedInCatalogEventType is the event type identifier.
const BookUpdatedInCatalogEventType = "BookUpdatedInCatalog"

// BookUpdatedInCatalog represents when title, year and authors of a book were replaced.
type BookUpdatedInCatalog struct {
	ISBN            ISBNString
	Title           string
	PublicationYear int
	Authors         []AuthorNameString
	OccurredAt      OccurredAt
}

// BuildBookUpdatedInCatalog creates a new BookUpdatedInCatalog event.
func BuildBookUpdatedInCatalog(book Book, occurredAt time.Time) BookUpdatedInCatalog {
	return BookUpdatedInCatalog{
		ISBN:            book.ISBN,
		Title:           book.Title,
		PublicationYear: book.PublicationYear,
		Authors:         book.Authors,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// Book returns the catalog entry as it looks after the update.
func (e BookUpdatedInCatalog) Book() Book {
	return Book{ISBN: e.ISBN, Title: e.Title, PublicationYear: e.PublicationYear, Authors: e.Authors}
}

// IsEventType returns the event type identifier.
func (e BookUpdatedInCatalog) IsEventType() string {
	return BookUpdatedInCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookUpdatedInCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
