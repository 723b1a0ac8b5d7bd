package core

import "strings"

// BookSearchCriteria narrows a catalog listing. Zero values match everything.
// Title and AuthorName match case-insensitive substrings, ISBN and PublicationYear match exactly.
type BookSearchCriteria struct {
	Title           string
	AuthorName      AuthorNameString
	PublicationYear int
	ISBN            ISBNString
}

// Normalized returns the criteria with surrounding whitespace removed.
func (c BookSearchCriteria) Normalized() BookSearchCriteria {
	return BookSearchCriteria{
		Title:           strings.TrimSpace(c.Title),
		AuthorName:      strings.TrimSpace(c.AuthorName),
		PublicationYear: c.PublicationYear,
		ISBN:            strings.TrimSpace(c.ISBN),
	}
}

// IsEmpty reports whether the criteria match the whole catalog.
func (c BookSearchCriteria) IsEmpty() bool {
	n := c.Normalized()
	return n.Title == "" && n.AuthorName == "" && n.PublicationYear == 0 && n.ISBN == ""
}
