package updatecustomer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatecustomer"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenCustomerUpdatesOwnProfile(t *testing.T) {
	// arrange
	current := FixtureCustomer()
	command := updatecustomer.BuildCommand(GivenCustomerActor(current.ID), current.ID, "Augusta Ada", current.LastName, current.Email, time.Now())

	// act
	result := updatecustomer.Decide(updatecustomer.State{Customer: current, CustomerExists: true}, command)

	// assert
	require.True(t, result.HasEventToApply())
	assert.Equal(t, "Augusta Ada", result.Event.(core.CustomerDetailsUpdated).Customer().FirstName)
}

func Test_Decide_Idempotent_WhenNothingChanges(t *testing.T) {
	// arrange
	current := FixtureCustomer()
	command := updatecustomer.BuildCommand(GivenLibrarian(), current.ID, current.FirstName, current.LastName, current.Email, time.Now())

	// act
	result := updatecustomer.Decide(updatecustomer.State{Customer: current, CustomerExists: true}, command)

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_WhenEmailBelongsToAnotherCustomer(t *testing.T) {
	// arrange
	current := FixtureCustomer()
	command := updatecustomer.BuildCommand(GivenLibrarian(), current.ID, current.FirstName, current.LastName, "taken@example.com", time.Now())

	// act
	result := updatecustomer.Decide(updatecustomer.State{Customer: current, CustomerExists: true, EmailTaken: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.ErrorContains(t, result.HasError(), "taken@example.com")
}

func Test_Decide_Error_WhenCustomerIsUnknown(t *testing.T) {
	// arrange
	id := GivenUniqueID()

	// act
	result := updatecustomer.Decide(updatecustomer.State{}, updatecustomer.BuildCommand(GivenLibrarian(), id, "Ada", "Lovelace", "", time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func Test_Decide_Error_WhenCustomerUpdatesSomeoneElse(t *testing.T) {
	// arrange
	current := FixtureCustomer()
	command := updatecustomer.BuildCommand(GivenCustomerActor(GivenUniqueID()), current.ID, "Eve", "Mallory", "", time.Now())

	// act
	result := updatecustomer.Decide(updatecustomer.State{Customer: current, CustomerExists: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrForbidden)
}
