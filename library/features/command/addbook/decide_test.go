package addbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbook"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenBookIsNew(t *testing.T) {
	// arrange
	command := addbook.BuildCommand(GivenLibrarian(), FixtureBook(), time.Now())

	// act
	result := addbook.Decide(addbook.State{}, command)

	// assert
	require.True(t, result.HasEventToApply())
	assert.Equal(t, command.Book, result.Event.(core.BookAddedToCatalog).Book())
}

func Test_Decide_Error_WhenBookExists(t *testing.T) {
	// arrange
	command := addbook.BuildCommand(GivenLibrarian(), FixtureBook(), time.Now())

	// act
	result := addbook.Decide(addbook.State{BookExists: true}, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrConflict)
	assert.ErrorContains(t, result.HasError(), command.Book.ISBN)
}

func Test_Decide_Error_WhenActorIsNotLibrarian(t *testing.T) {
	testCases := []struct {
		name  string
		actor core.Actor
		want  error
	}{
		{name: "anonymous", actor: GivenAnonymous(), want: core.ErrUnauthenticated},
		{name: "customer", actor: GivenCustomerActor(uuid.New()), want: core.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := addbook.Decide(addbook.State{}, addbook.BuildCommand(tc.actor, FixtureBook(), time.Now()))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.want)
		})
	}
}

func Test_BuildCommand_NormalizesInput(t *testing.T) {
	// arrange
	book := core.Book{
		ISBN:            " 9781234567890 ",
		Title:           "  Test ",
		PublicationYear: 2023,
		Authors:         []core.AuthorNameString{" Jane Doe", "Jane Doe", "", "John Roe "},
	}

	// act
	command := addbook.BuildCommand(GivenLibrarian(), book, time.Now())

	// assert
	assert.Equal(t, "9781234567890", command.Book.ISBN)
	assert.Equal(t, "Test", command.Book.Title)
	assert.Equal(t, []core.AuthorNameString{"Jane Doe", "John Roe"}, command.Book.Authors)
	assert.NoError(t, command.Validate())
}

func Test_Validate_ReportsEveryInvalidField(t *testing.T) {
	// arrange
	command := addbook.BuildCommand(GivenLibrarian(), core.Book{ISBN: "12-34", Authors: []core.AuthorNameString{"  "}}, time.Now())

	// act
	err := command.Validate()

	// assert
	var domainErr *core.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, core.CodeValidation, domainErr.Code)
	assert.Contains(t, domainErr.Fields, "isbn")
	assert.Contains(t, domainErr.Fields, "title")
	assert.Contains(t, domainErr.Fields, "publicationYear")
	assert.Contains(t, domainErr.Fields, "authors")
}
