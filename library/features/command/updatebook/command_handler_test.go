package updatebook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatebook"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_ReplacesBookDetails(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	wanted := core.Book{
		ISBN:            book.ISBN,
		Title:           "Second Edition",
		PublicationYear: 2024,
		Authors:         []core.AuthorNameString{"Brian Kernighan", "Rob Pike"},
	}
	handler := updatebook.NewCommandHandler(repo)

	// act
	result, err := handler.Handle(ctx, updatebook.BuildCommand(GivenLibrarian(), wanted, time.Now()))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	stored, found, err := repo.FindBook(ctx, book.ISBN)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Second Edition", stored.Title)
	assert.Equal(t, 2024, stored.PublicationYear)
	assert.ElementsMatch(t, wanted.Authors, stored.Authors)
}

func Test_CommandHandler_Handle_IsIdempotent_WhenNothingChanges(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	handler := updatebook.NewCommandHandler(repo)

	// act
	result, err := handler.Handle(context.Background(), updatebook.BuildCommand(GivenLibrarian(), book, time.Now()))

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Nil(t, result.Event)
}

func Test_CommandHandler_Handle_Fails_WhenBookIsUnknown(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	handler := updatebook.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(context.Background(), updatebook.BuildCommand(GivenLibrarian(), FixtureBook(), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}
