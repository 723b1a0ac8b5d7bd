package cancelreservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/cancelreservation"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_CancelsOwnReservation(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	customer := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	available := GivenCopiesWereAdded(t, repo, book.ISBN, 1)[0]
	reserved := GivenCopyWasTransitioned(t, repo, available,
		core.BuildBookCopyReserved(available.ID, book.ISBN, customer.ID, time.Now()))
	handler := cancelreservation.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(ctx, cancelreservation.BuildCommand(GivenCustomerActor(customer.ID), reserved.ID, customer.ID, time.Now()))

	// assert
	require.NoError(t, err)

	stored, _, err := repo.FindCopy(ctx, reserved.ID)
	require.NoError(t, err)
	assert.Equal(t, core.CopyAvailable, stored.Status)
	assert.False(t, stored.CustomerID.Valid)
}

func Test_CommandHandler_Handle_KeepsReservation_WhenAnotherCustomerCancels(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	holder := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	other := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	available := GivenCopiesWereAdded(t, repo, book.ISBN, 1)[0]
	reserved := GivenCopyWasTransitioned(t, repo, available,
		core.BuildBookCopyReserved(available.ID, book.ISBN, holder.ID, time.Now()))
	handler := cancelreservation.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(ctx, cancelreservation.BuildCommand(GivenCustomerActor(other.ID), reserved.ID, other.ID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidState)
	assert.Contains(t, err.Error(), holder.ID.String())

	stored, _, err := repo.FindCopy(ctx, reserved.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsHeldBy(holder.ID))
}
