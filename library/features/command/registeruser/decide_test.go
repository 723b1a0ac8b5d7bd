package registeruser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registeruser"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func customerProfile() registeruser.Profile {
	return registeruser.Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
}

func Test_Decide_Success_ForAnonymousCustomerSignUp(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", core.RoleCustomer, customerProfile(), time.Now())

	// act
	result := registeruser.Decide(registeruser.State{}, command)

	// assert
	require.True(t, result.HasEventToApply())

	event := result.Event.(core.UserRegistered)
	assert.Equal(t, "ada", event.Username)
	assert.Equal(t, core.RoleCustomer, event.Role)
	assert.Equal(t, core.NullableID(command.Customer.ID), event.CustomerID)
}

func Test_Decide_Success_WhenLibrarianRegistersLibrarian(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(GivenLibrarian(), "desk2", "hash", core.RoleLibrarian, registeruser.Profile{}, time.Now())

	// act
	result := registeruser.Decide(registeruser.State{}, command)

	// assert
	require.True(t, result.HasEventToApply())
	assert.False(t, result.Event.(core.UserRegistered).CustomerID.Valid)
}

func Test_Decide_Error_WhenLibrarianIsRequestedByNonLibrarian(t *testing.T) {
	testCases := []struct {
		name  string
		actor core.Actor
		want  error
	}{
		{name: "anonymous", actor: GivenAnonymous(), want: core.ErrUnauthenticated},
		{name: "customer", actor: GivenCustomerActor(GivenUniqueID()), want: core.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := registeruser.BuildCommand(tc.actor, "boss", "hash", core.RoleLibrarian, registeruser.Profile{}, time.Now())

			// act
			result := registeruser.Decide(registeruser.State{}, command)

			// assert
			assert.ErrorIs(t, result.HasError(), tc.want)
		})
	}
}

func Test_Decide_Error_WhenUsernameIsTaken(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", core.RoleCustomer, customerProfile(), time.Now())

	// act
	result := registeruser.Decide(registeruser.State{UsernameTaken: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.EqualError(t, result.HasError(), "username ada is already taken")
}

func Test_Validate_CustomerNeedsNames(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", core.RoleCustomer, registeruser.Profile{}, time.Now())

	// act
	err := command.Validate()

	// assert
	var domainErr *core.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Fields, "firstName")
	assert.Contains(t, domainErr.Fields, "lastName")
}

func Test_Validate_RejectsUnknownRole(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", "ADMIN", registeruser.Profile{}, time.Now())

	// act
	err := command.Validate()

	// assert
	var domainErr *core.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "must be LIBRARIAN or CUSTOMER", domainErr.Fields["role"])
}

func Test_BuildCommand_AcceptsLowercaseRole(t *testing.T) {
	// act
	command := registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", "customer", customerProfile(), time.Now())

	// assert
	assert.Equal(t, core.RoleCustomer, command.User.Role)
	assert.NoError(t, command.Validate())
}
