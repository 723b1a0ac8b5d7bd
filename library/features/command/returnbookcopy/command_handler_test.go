package returnbookcopy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/returnbookcopy"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_ReturnsBorrowedCopy(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	customer := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	available := GivenCopiesWereAdded(t, repo, book.ISBN, 1)[0]
	borrowed := GivenCopyWasTransitioned(t, repo, available,
		core.BuildBookCopyBorrowed(available.ID, book.ISBN, customer.ID, time.Now()))
	handler := returnbookcopy.NewCommandHandler(repo)

	// act
	result, err := handler.Handle(ctx, returnbookcopy.BuildCommand(GivenCustomerActor(customer.ID), borrowed.ID, customer.ID, time.Now()))

	// assert
	require.NoError(t, err)
	assert.IsType(t, core.BookCopyReturned{}, result.Event)

	stored, _, err := repo.FindCopy(ctx, borrowed.ID)
	require.NoError(t, err)
	assert.Equal(t, core.CopyAvailable, stored.Status)
	assert.False(t, stored.CustomerID.Valid)
}

func Test_CommandHandler_Handle_Fails_WhenCopyIsAvailable(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	customer := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	available := GivenCopiesWereAdded(t, repo, book.ISBN, 1)[0]
	handler := returnbookcopy.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(context.Background(), returnbookcopy.BuildCommand(GivenLibrarian(), available.ID, customer.ID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidState)
	assert.Contains(t, err.Error(), "AVAILABLE")
}

func Test_CommandHandler_Handle_Fails_WhenCopyIsUnknown(t *testing.T) {
	// arrange
	handler := returnbookcopy.NewCommandHandler(NewSQLiteRepository(t))

	// act
	_, err := handler.Handle(context.Background(), returnbookcopy.BuildCommand(GivenLibrarian(), GivenUniqueID(), GivenUniqueID(), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}
