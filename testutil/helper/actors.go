package helper

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// GivenLibrarian returns an authenticated librarian actor.
func GivenLibrarian() core.Actor {
	return core.Actor{UserID: GivenUniqueID(), Username: "librarian", Role: core.RoleLibrarian}
}

// GivenCustomerActor returns an authenticated customer actor linked to customerID.
func GivenCustomerActor(customerID uuid.UUID) core.Actor {
	return core.Actor{
		UserID:     GivenUniqueID(),
		Username:   "customer-" + customerID.String(),
		Role:       core.RoleCustomer,
		CustomerID: core.NullableID(customerID),
	}
}

// GivenAnonymous returns the unauthenticated actor.
func GivenAnonymous() core.Actor {
	return core.Actor{}
}
