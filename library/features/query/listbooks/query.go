package listbooks

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "ListBooks"
)

// Query represents the intent to list one page of the catalog.
type Query struct {
	Criteria core.BookSearchCriteria
	Page     core.PageRequest
}

// BuildQuery creates a new Query, the page request is clamped into the supported range.
func BuildQuery(criteria core.BookSearchCriteria, pageNumber, pageSize int) Query {
	return Query{
		Criteria: criteria.Normalized(),
		Page:     core.NewPageRequest(pageNumber, pageSize),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
