package customerholdings

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "CustomerHoldings"
)

// Query represents the intent to list the copies held by a customer.
type Query struct {
	Actor      core.Actor
	CustomerID uuid.UUID
}

// BuildQuery creates a new Query with the provided customer ID.
func BuildQuery(actor core.Actor, customerID uuid.UUID) Query {
	return Query{Actor: actor, CustomerID: customerID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
