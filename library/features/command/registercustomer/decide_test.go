package registercustomer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenEmailIsFree(t *testing.T) {
	// arrange
	command := registercustomer.BuildCommand(GivenLibrarian(), "Ada", "Lovelace", "ada@example.com", time.Now())

	// act
	result := registercustomer.Decide(registercustomer.State{}, command)

	// assert
	require.True(t, result.HasEventToApply())
	assert.Equal(t, command.Customer, result.Event.(core.CustomerRegistered).Customer())
}

func Test_Decide_Error_WhenEmailIsTaken(t *testing.T) {
	// arrange
	command := registercustomer.BuildCommand(GivenLibrarian(), "Ada", "Lovelace", "ada@example.com", time.Now())

	// act
	result := registercustomer.Decide(registercustomer.State{EmailTaken: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.ErrorContains(t, result.HasError(), "ada@example.com")
}

func Test_Decide_Error_WhenActorIsCustomer(t *testing.T) {
	// act
	result := registercustomer.Decide(
		registercustomer.State{},
		registercustomer.BuildCommand(GivenCustomerActor(GivenUniqueID()), "Ada", "Lovelace", "", time.Now()),
	)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrForbidden)
}

func Test_Validate_ReportsFieldErrors(t *testing.T) {
	// arrange
	command := registercustomer.BuildCommand(GivenLibrarian(), " ", "", "not-an-email", time.Now())

	// act
	err := command.Validate()

	// assert
	var domainErr *core.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, map[string]string{
		"firstName": "must not be blank",
		"lastName":  "must not be blank",
		"email":     "must be a valid email address",
	}, domainErr.Fields)
}
