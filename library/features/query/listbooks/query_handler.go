package listbooks

import (
	"context"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	SearchBooks(ctx context.Context, criteria core.BookSearchCriteria, page core.PageRequest) ([]core.Book, int, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the requested page together with the total number of matching books.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Page[core.Book], error) {
	books, total, err := h.store.SearchBooks(ctx, query.Criteria, query.Page)
	if err != nil {
		return core.Page[core.Book]{}, err
	}

	return core.NewPage(query.Page, books, total), nil
}
