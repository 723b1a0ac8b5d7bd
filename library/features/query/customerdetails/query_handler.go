package customerdetails

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindCustomer(ctx context.Context, customerID uuid.UUID) (core.Customer, bool, error)
}

// QueryHandler answers the Query from the store.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the customer or a NotFound error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Customer, error) {
	if err := core.RequireCustomerAccess(query.Actor, query.CustomerID); err != nil {
		return core.Customer{}, err
	}

	customer, found, err := h.store.FindCustomer(ctx, query.CustomerID)
	if err != nil {
		return core.Customer{}, err
	}

	if !found {
		return core.Customer{}, core.NotFound("customer %s not found", query.CustomerID)
	}

	return customer, nil
}
