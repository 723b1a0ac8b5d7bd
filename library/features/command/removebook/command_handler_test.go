package removebook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/removebook"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_RemovesBookWithoutCopies(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	handler := removebook.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(ctx, removebook.BuildCommand(GivenLibrarian(), book.ISBN, time.Now()))

	// assert
	require.NoError(t, err)

	_, found, err := repo.FindBook(ctx, book.ISBN)
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_CommandHandler_Handle_Fails_WhenOnlyLostCopiesRemain(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	available := GivenCopiesWereAdded(t, repo, book.ISBN, 1)[0]
	GivenCopyWasTransitioned(t, repo, available, core.BuildBookCopyMarkedLost(available, time.Now()))
	handler := removebook.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(ctx, removebook.BuildCommand(GivenLibrarian(), book.ISBN, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)

	_, found, findErr := repo.FindBook(ctx, book.ISBN)
	require.NoError(t, findErr)
	assert.True(t, found)
}

func Test_CommandHandler_Handle_Fails_WhenBookIsUnknown(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	handler := removebook.NewCommandHandler(repo)

	// act
	_, err := handler.Handle(context.Background(), removebook.BuildCommand(GivenLibrarian(), GivenUniqueISBN(), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}
