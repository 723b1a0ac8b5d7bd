package authenticateuser

import (
	"strings"
)

const (
	queryType = "AuthenticateUser"
)

// Query represents the intent to verify a username and password.
type Query struct {
	Username string
	Password string
}

// BuildQuery creates a new Query with the provided credentials.
func BuildQuery(username, password string) Query {
	return Query{Username: strings.TrimSpace(username), Password: password}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
