package whoami

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	queryType = "WhoAmI"
)

// Query represents the intent to learn the identity behind the current session.
type Query struct {
	Actor core.Actor
}

// BuildQuery creates a new Query for the provided actor.
func BuildQuery(actor core.Actor) Query {
	return Query{Actor: actor}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
