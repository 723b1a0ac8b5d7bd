package registercustomer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_StoresCustomer(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	handler := registercustomer.NewCommandHandler(repo)
	command := registercustomer.BuildCommand(GivenLibrarian(), "Ada", "Lovelace", "ada@example.com", time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	stored, found, err := repo.FindCustomer(ctx, command.Customer.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, command.Customer, stored)
}

func Test_CommandHandler_Handle_Fails_WhenEmailIsTaken(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	existing := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	handler := registercustomer.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(context.Background(),
		registercustomer.BuildCommand(GivenLibrarian(), "Grace", "Hopper", existing.Email, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.ErrorContains(t, err, existing.Email)
}

func Test_CommandHandler_Handle_AllowsSeveralCustomersWithoutEmail(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	handler := registercustomer.NewCommandHandler(repo)

	// act
	_, firstErr := handler.Handle(context.Background(), registercustomer.BuildCommand(GivenLibrarian(), "Ada", "Lovelace", "", time.Now()))
	_, secondErr := handler.Handle(context.Background(), registercustomer.BuildCommand(GivenLibrarian(), "Grace", "Hopper", "", time.Now()))

	// assert
	assert.NoError(t, firstErr)
	assert.NoError(t, secondErr)
}
