package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// ISBNString represents an ISBN identifier, it is the natural key of a Book.
type ISBNString = string

// AuthorNameString represents an author name, it is the natural key of an Author.
type AuthorNameString = string

// EmailString represents a customer email address.
type EmailString = string

// OccurredAt represents when an event occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
