package listcustomers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/query/listcustomers"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_ListsCustomersPaginated(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	for range 3 {
		GivenCustomerWasRegistered(t, repo, FixtureCustomer())
	}
	handler := listcustomers.NewQueryHandler(repo)

	// act
	page, err := handler.Handle(context.Background(), listcustomers.BuildQuery(GivenLibrarian(), 0, 2))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalItems)
	assert.Len(t, page.Items, 2)
}

func Test_QueryHandler_Handle_Fails_WhenActorIsCustomer(t *testing.T) {
	// arrange
	handler := listcustomers.NewQueryHandler(NewSQLiteRepository(t))

	// act
	_, err := handler.Handle(context.Background(), listcustomers.BuildQuery(GivenCustomerActor(GivenUniqueID()), 0, 0))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
