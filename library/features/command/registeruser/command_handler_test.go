package registeruser_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registeruser"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_ProvisionsCustomerProfile(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	handler := registeruser.NewCommandHandler(repo)
	command := registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", core.RoleCustomer, customerProfile(), time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	user, found, err := repo.FindUserByUsername(ctx, "ada")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, core.RoleCustomer, user.Role)
	require.True(t, user.CustomerID.Valid)

	customer, found, err := repo.FindCustomer(ctx, user.CustomerID.UUID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Lovelace", customer.LastName)
}

func Test_CommandHandler_Handle_StoresLibrarianWithoutProfile(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	handler := registeruser.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(ctx,
		registeruser.BuildCommand(GivenLibrarian(), "desk", "hash", core.RoleLibrarian, registeruser.Profile{}, time.Now()))

	// assert
	require.NoError(t, err)

	user, found, err := repo.FindUserByUsername(ctx, "desk")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, user.CustomerID.Valid)
}

func Test_CommandHandler_Handle_Fails_WhenUsernameIsTaken(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	handler := registeruser.NewCommandHandler(repo)
	_, err := handler.Handle(ctx, registeruser.BuildCommand(GivenAnonymous(), "ada", "hash", core.RoleCustomer, customerProfile(), time.Now()))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, registeruser.BuildCommand(GivenAnonymous(), "ada", "other", core.RoleCustomer,
		registeruser.Profile{FirstName: "Ada", LastName: "Byron"}, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
}

func Test_CommandHandler_Handle_Fails_WhenEmailIsTaken(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	existing := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	handler := registeruser.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(ctx, registeruser.BuildCommand(GivenAnonymous(), "grace", "hash", core.RoleCustomer,
		registeruser.Profile{FirstName: "Grace", LastName: "Hopper", Email: existing.Email}, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.ErrorContains(t, err, existing.Email)

	_, found, findErr := repo.FindUserByUsername(ctx, "grace")
	require.NoError(t, findErr)
	assert.False(t, found)
}
