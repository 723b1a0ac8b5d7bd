package whoami

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindUser(ctx context.Context, userID uuid.UUID) (core.User, bool, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the current identity. A session of a user that no longer exists counts as anonymous.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Identity, error) {
	if !query.Actor.IsAuthenticated() {
		return Anonymous(), nil
	}

	user, found, err := h.store.FindUser(ctx, query.Actor.UserID)
	if err != nil {
		return Identity{}, err
	}

	if !found {
		return Anonymous(), nil
	}

	identity := Identity{
		Authenticated: true,
		UserID:        &user.ID,
		Username:      user.Username,
		Role:          user.Role,
	}

	if user.CustomerID.Valid {
		identity.CustomerID = &user.CustomerID.UUID
	}

	return identity, nil
}
