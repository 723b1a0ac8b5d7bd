package customerholdings

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindCustomer(ctx context.Context, customerID uuid.UUID) (core.Customer, bool, error)
	CopiesHeldBy(ctx context.Context, customerID uuid.UUID) ([]core.Copy, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the holdings of the customer or a NotFound error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Holdings, error) {
	if err := core.RequireCustomerAccess(query.Actor, query.CustomerID); err != nil {
		return Holdings{}, err
	}

	_, found, err := h.store.FindCustomer(ctx, query.CustomerID)
	if err != nil {
		return Holdings{}, err
	}

	if !found {
		return Holdings{}, core.NotFound("customer %s not found", query.CustomerID)
	}

	copies, err := h.store.CopiesHeldBy(ctx, query.CustomerID)
	if err != nil {
		return Holdings{}, err
	}

	return ProjectHoldings(query.CustomerID, copies), nil
}
