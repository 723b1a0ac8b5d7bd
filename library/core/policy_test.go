package core_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-backend/library/core"
)

func Test_RequireLibrarian(t *testing.T) {
	librarian := core.Actor{UserID: uuid.New(), Username: "lib", Role: core.RoleLibrarian}
	customer := core.Actor{UserID: uuid.New(), Username: "cus", Role: core.RoleCustomer, CustomerID: core.NullableID(uuid.New())}

	assert.NoError(t, core.RequireLibrarian(librarian), "Should allow librarians")
	assert.True(t, errors.Is(core.RequireLibrarian(customer), core.ErrForbidden), "Should forbid customers")
	assert.True(t, errors.Is(core.RequireLibrarian(core.Actor{}), core.ErrUnauthenticated), "Should reject anonymous actors")
}

func Test_RequireCustomerAccess(t *testing.T) {
	ownID := uuid.New()
	customer := core.Actor{UserID: uuid.New(), Username: "cus", Role: core.RoleCustomer, CustomerID: core.NullableID(ownID)}
	librarian := core.Actor{UserID: uuid.New(), Username: "lib", Role: core.RoleLibrarian}

	assert.NoError(t, core.RequireCustomerAccess(customer, ownID), "Should allow the owner")
	assert.NoError(t, core.RequireCustomerAccess(librarian, ownID), "Should allow librarians")
	assert.True(t, errors.Is(core.RequireCustomerAccess(customer, uuid.New()), core.ErrForbidden), "Should forbid other customers")
	assert.True(t, errors.Is(core.RequireCustomerAccess(core.Actor{}, ownID), core.ErrUnauthenticated), "Should reject anonymous actors")
}

func Test_OwnCustomerID(t *testing.T) {
	ownID := uuid.New()

	id, err := core.OwnCustomerID(core.Actor{Username: "cus", Role: core.RoleCustomer, CustomerID: core.NullableID(ownID)})
	assert.NoError(t, err)
	assert.Equal(t, ownID, id)

	_, err = core.OwnCustomerID(core.Actor{Username: "lib", Role: core.RoleLibrarian})
	assert.True(t, errors.Is(err, core.ErrForbidden), "Should fail without a customer profile")
}
