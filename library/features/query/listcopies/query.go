package listcopies

import (
	"strings"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "ListCopies"
)

// Query represents the intent to list one page of copies. An empty ISBN lists all copies.
type Query struct {
	Actor core.Actor
	ISBN  core.ISBNString
	Page  core.PageRequest
}

// BuildQuery creates a new Query, the page request is clamped into the supported range.
func BuildQuery(actor core.Actor, isbn core.ISBNString, pageNumber, pageSize int) Query {
	return Query{
		Actor: actor,
		ISBN:  strings.TrimSpace(isbn),
		Page:  core.NewPageRequest(pageNumber, pageSize),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
