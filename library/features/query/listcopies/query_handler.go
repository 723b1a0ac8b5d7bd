package listcopies

import (
	"context"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindBook(ctx context.Context, isbn core.ISBNString) (core.Book, bool, error)
	ListCopies(ctx context.Context, isbn core.ISBNString, page core.PageRequest) ([]core.Copy, int, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the requested page of copies. Listing the copies of an unknown ISBN is NotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Page[core.Copy], error) {
	if err := core.RequireLibrarian(query.Actor); err != nil {
		return core.Page[core.Copy]{}, err
	}

	if query.ISBN != "" {
		_, found, err := h.store.FindBook(ctx, query.ISBN)
		if err != nil {
			return core.Page[core.Copy]{}, err
		}

		if !found {
			return core.Page[core.Copy]{}, core.NotFound("book with ISBN %s not found", query.ISBN)
		}
	}

	copies, total, err := h.store.ListCopies(ctx, query.ISBN, query.Page)
	if err != nil {
		return core.Page[core.Copy]{}, err
	}

	return core.NewPage(query.Page, copies, total), nil
}
