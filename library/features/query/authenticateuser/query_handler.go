package authenticateuser

import (
	"context"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const invalidCredentials = "invalid username or password"

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindUserByUsername(ctx context.Context, username string) (core.User, bool, error)
}

// PasswordMatcher verifies a password against its stored hash.
type PasswordMatcher interface {
	Matches(hash, plain string) bool
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store   Store
	matcher PasswordMatcher
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store, matcher PasswordMatcher) QueryHandler {
	return QueryHandler{store: store, matcher: matcher}
}

// Handle returns the Actor for valid credentials. Unknown users and wrong passwords fail alike.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Actor, error) {
	if query.Username == "" || query.Password == "" {
		return core.Actor{}, core.Unauthenticated(invalidCredentials)
	}

	user, found, err := h.store.FindUserByUsername(ctx, query.Username)
	if err != nil {
		return core.Actor{}, err
	}

	if !found || !h.matcher.Matches(user.PasswordHash, query.Password) {
		return core.Actor{}, core.Unauthenticated(invalidCredentials)
	}

	return core.ActorFromUser(user), nil
}
