package listcustomers

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "ListCustomers"
)

// Query represents the intent to list one page of customers.
type Query struct {
	Actor core.Actor
	Page  core.PageRequest
}

// BuildQuery creates a new Query, the page request is clamped into the supported range.
func BuildQuery(actor core.Actor, pageNumber, pageSize int) Query {
	return Query{Actor: actor, Page: core.NewPageRequest(pageNumber, pageSize)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
