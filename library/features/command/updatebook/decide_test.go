package updatebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatebook"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenDetailsChange(t *testing.T) {
	// arrange
	current := FixtureBook()
	wanted := current
	wanted.Title = "A Different Title"

	// act
	result := updatebook.Decide(
		updatebook.State{Book: current, BookExists: true},
		updatebook.BuildCommand(GivenLibrarian(), wanted, time.Now()),
	)

	// assert
	require.True(t, result.HasEventToApply())
	assert.Equal(t, "A Different Title", result.Event.(core.BookUpdatedInCatalog).Book().Title)
}

func Test_Decide_Success_WhenAuthorSetChanges(t *testing.T) {
	// arrange
	current := FixtureBook()
	wanted := current
	wanted.Authors = []core.AuthorNameString{current.Authors[0], "Someone Else"}

	// act
	result := updatebook.Decide(
		updatebook.State{Book: current, BookExists: true},
		updatebook.BuildCommand(GivenLibrarian(), wanted, time.Now()),
	)

	// assert
	assert.True(t, result.HasEventToApply())
}

func Test_Decide_Idempotent_WhenOnlyAuthorOrderDiffers(t *testing.T) {
	// arrange
	current := FixtureBook()
	wanted := current
	wanted.Authors = []core.AuthorNameString{current.Authors[1], current.Authors[0]}

	// act
	result := updatebook.Decide(
		updatebook.State{Book: current, BookExists: true},
		updatebook.BuildCommand(GivenLibrarian(), wanted, time.Now()),
	)

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_WhenBookIsUnknown(t *testing.T) {
	// act
	result := updatebook.Decide(updatebook.State{}, updatebook.BuildCommand(GivenLibrarian(), FixtureBook(), time.Now()))

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}

func Test_Decide_Error_WhenActorIsCustomer(t *testing.T) {
	// arrange
	book := FixtureBook()

	// act
	result := updatebook.Decide(
		updatebook.State{Book: book, BookExists: true},
		updatebook.BuildCommand(GivenCustomerActor(GivenUniqueID()), book, time.Now()),
	)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrForbidden)
}
