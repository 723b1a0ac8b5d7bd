package copydetails

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindCopy(ctx context.Context, copyID uuid.UUID) (core.Copy, bool, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the copy or a NotFound error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Copy, error) {
	if err := core.RequireLibrarian(query.Actor); err != nil {
		return core.Copy{}, err
	}

	bookCopy, found, err := h.store.FindCopy(ctx, query.CopyID)
	if err != nil {
		return core.Copy{}, err
	}

	if !found {
		return core.Copy{}, core.NotFound("copy %s not found", query.CopyID)
	}

	return bookCopy, nil
}
