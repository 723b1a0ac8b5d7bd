package removebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/removebook"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenBookHasNoCopies(t *testing.T) {
	// arrange
	command := removebook.BuildCommand(GivenLibrarian(), "9781234567890", time.Now())

	// act
	result := removebook.Decide(removebook.State{BookExists: true}, command)

	// assert
	require.True(t, result.HasEventToApply())
	assert.Equal(t, "9781234567890", result.Event.(core.BookRemovedFromCatalog).ISBN)
}

func Test_Decide_Error_WhenBookHasCopies(t *testing.T) {
	// arrange
	command := removebook.BuildCommand(GivenLibrarian(), "9781234567890", time.Now())

	// act
	result := removebook.Decide(removebook.State{BookExists: true, CopyCount: 2}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.EqualError(t, result.HasError(), "book 9781234567890 still has 2 copies")
}

func Test_Decide_Error_WhenBookIsUnknown(t *testing.T) {
	// act
	result := removebook.Decide(removebook.State{}, removebook.BuildCommand(GivenLibrarian(), "9781234567890", time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func Test_Decide_Error_WhenActorIsCustomer(t *testing.T) {
	// act
	result := removebook.Decide(
		removebook.State{BookExists: true},
		removebook.BuildCommand(GivenCustomerActor(GivenUniqueID()), "9781234567890", time.Now()),
	)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrForbidden)
}
