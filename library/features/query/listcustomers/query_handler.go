package listcustomers

import (
	"context"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	ListCustomers(ctx context.Context, page core.PageRequest) ([]core.Customer, int, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the requested page of customers.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Page[core.Customer], error) {
	if err := core.RequireLibrarian(query.Actor); err != nil {
		return core.Page[core.Customer]{}, err
	}

	customers, total, err := h.store.ListCustomers(ctx, query.Page)
	if err != nil {
		return core.Page[core.Customer]{}, err
	}

	return core.NewPage(query.Page, customers, total), nil
}
