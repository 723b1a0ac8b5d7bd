package copydetails

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "CopyDetails"
)

// Query represents the intent to look up one copy.
type Query struct {
	Actor  core.Actor
	CopyID uuid.UUID
}

// BuildQuery creates a new Query with the provided copy ID.
func BuildQuery(actor core.Actor, copyID uuid.UUID) Query {
	return Query{Actor: actor, CopyID: copyID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
