package copydetails_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/query/copydetails"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_ReturnsCopyWithHolder(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	customer := GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	available := GivenCopiesWereAdded(t, repo, book.ISBN, 1)[0]
	reserved := GivenCopyWasTransitioned(t, repo, available,
		core.BuildBookCopyReserved(available.ID, book.ISBN, customer.ID, time.Now()))
	handler := copydetails.NewQueryHandler(repo)

	// act
	found, err := handler.Handle(context.Background(), copydetails.BuildQuery(GivenLibrarian(), reserved.ID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, reserved, found)
}

func Test_QueryHandler_Handle_Fails_WhenCopyIsUnknown(t *testing.T) {
	// arrange
	handler := copydetails.NewQueryHandler(NewSQLiteRepository(t))

	// act
	_, err := handler.Handle(context.Background(), copydetails.BuildQuery(GivenLibrarian(), GivenUniqueID()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_QueryHandler_Handle_Fails_WhenActorIsAnonymous(t *testing.T) {
	// arrange
	handler := copydetails.NewQueryHandler(NewSQLiteRepository(t))

	// act
	_, err := handler.Handle(context.Background(), copydetails.BuildQuery(GivenAnonymous(), GivenUniqueID()))

	// assert
	assert.ErrorIs(t, err, core.ErrUnauthenticated)
}
