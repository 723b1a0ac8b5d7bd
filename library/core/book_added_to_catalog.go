package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a librarian adds a new book to the catalog.
type BookAddedToCatalog struct {
	ISBN            ISBNString
	Title           string
	PublicationYear int
	Authors         []AuthorNameString
	OccurredAt      OccurredAt
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(book Book, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		ISBN:            book.ISBN,
		Title:           book.Title,
		PublicationYear: book.PublicationYear,
		Authors:         book.Authors,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

// Book returns the catalog entry described by the event.
func (e BookAddedToCatalog) Book() Book {
	return Book{ISBN: e.ISBN, Title: e.Title, PublicationYear: e.PublicationYear, Authors: e.Authors}
}

// IsEventType returns the event type identifier.
func (e BookAddedToCatalog) IsEventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
