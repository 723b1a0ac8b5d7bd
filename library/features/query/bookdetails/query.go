package bookdetails

import (
	"strings"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "BookDetails"
)

// Query represents the intent to look up one book.
type Query struct {
	ISBN core.ISBNString
}

// BuildQuery creates a new Query with the provided ISBN.
func BuildQuery(isbn core.ISBNString) Query {
	return Query{ISBN: strings.TrimSpace(isbn)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
