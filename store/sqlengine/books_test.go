package sqlengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/store"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_FindBook_ReturnsBookWithAuthorsInOrder_WhenBookWasAdded(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())

	// act
	found, ok, err := repo.FindBook(ctx, book.ISBN)

	// assert
	require.NoError(t, err)
	assert.True(t, ok, "book should be found")
	assert.Equal(t, book, found)
}

func Test_FindBook_ReportsNotFound_WhenISBNIsUnknown(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)

	// act
	_, ok, err := repo.FindBook(context.Background(), GivenUniqueISBN())

	// assert
	require.NoError(t, err)
	assert.False(t, ok, "book should not be found")
}

func Test_InsertBook_ReturnsDuplicateKey_WhenISBNIsTaken(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())

	// act
	err := repo.InsertBook(context.Background(), book)

	// assert
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}

func Test_InsertBook_SharesAuthors_WhenTwoBooksHaveTheSameAuthor(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	first := GivenBookWasAdded(t, repo, FixtureBook())
	second := FixtureBook()
	second.Authors = []core.AuthorNameString{"Brian Kernighan", "Dennis Ritchie"}

	// act
	err := repo.InsertBook(ctx, second)

	// assert
	require.NoError(t, err)
	found, _, findErr := repo.FindBook(ctx, second.ISBN)
	require.NoError(t, findErr)
	assert.Equal(t, second.Authors, found.Authors)
	stillFirst, _, findErr := repo.FindBook(ctx, first.ISBN)
	require.NoError(t, findErr)
	assert.Equal(t, first.Authors, stillFirst.Authors)
}

func Test_SearchBooks_MatchesTitleIgnoringCase(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	wanted := FixtureBook()
	wanted.Title = "Concurrency in Go"
	GivenBookWasAdded(t, repo, wanted)
	GivenBookWasAdded(t, repo, FixtureBook())

	// act
	books, total, err := repo.SearchBooks(ctx, core.BookSearchCriteria{Title: "  CONCURRENCY "}, core.NewPageRequest(0, 10))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, wanted.ISBN, books[0].ISBN)
}

func Test_SearchBooks_MatchesAuthorSubstring(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	wanted := FixtureBook()
	wanted.Authors = []core.AuthorNameString{"Katherine Cox-Buday"}
	GivenBookWasAdded(t, repo, wanted)
	GivenBookWasAdded(t, repo, FixtureBook())

	// act
	books, total, err := repo.SearchBooks(ctx, core.BookSearchCriteria{AuthorName: "cox"}, core.NewPageRequest(0, 10))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, wanted.Authors, books[0].Authors)
}

func Test_SearchBooks_CombinesCriteria(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	old := FixtureBook()
	old.PublicationYear = 1978
	GivenBookWasAdded(t, repo, old)
	GivenBookWasAdded(t, repo, FixtureBook())

	// act
	books, total, err := repo.SearchBooks(
		ctx,
		core.BookSearchCriteria{Title: "go", PublicationYear: 1978},
		core.NewPageRequest(0, 10),
	)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, old.ISBN, books[0].ISBN)
}

func Test_SearchBooks_ReturnsRequestedPageAndTotal(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	for range 5 {
		GivenBookWasAdded(t, repo, FixtureBook())
	}

	// act
	books, total, err := repo.SearchBooks(ctx, core.BookSearchCriteria{}, core.NewPageRequest(1, 2))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, books, 2)
}

func Test_SearchBooks_ReturnsEmptySlice_WhenNothingMatches(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)

	// act
	books, total, err := repo.SearchBooks(context.Background(), core.BookSearchCriteria{ISBN: GivenUniqueISBN()}, core.NewPageRequest(0, 10))

	// assert
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func Test_ReplaceBook_ReplacesTitleYearAndAuthors(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	replacement := core.Book{
		ISBN:            book.ISBN,
		Title:           "The Go Programming Language, 2nd Edition",
		PublicationYear: 2026,
		Authors:         []core.AuthorNameString{"Brian Kernighan"},
	}

	// act
	err := repo.ReplaceBook(ctx, replacement)

	// assert
	require.NoError(t, err)
	found, _, findErr := repo.FindBook(ctx, book.ISBN)
	require.NoError(t, findErr)
	assert.Equal(t, replacement, found)
}

func Test_ReplaceBook_ReturnsConcurrencyConflict_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)

	// act
	err := repo.ReplaceBook(context.Background(), FixtureBook())

	// assert
	assert.ErrorIs(t, err, store.ErrConcurrencyConflict)
}

func Test_DeleteBook_RemovesBook_WhenBookHasNoCopies(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())

	// act
	err := repo.DeleteBook(ctx, book.ISBN)

	// assert
	require.NoError(t, err)
	_, ok, findErr := repo.FindBook(ctx, book.ISBN)
	require.NoError(t, findErr)
	assert.False(t, ok, "book should be gone")
}

func Test_DeleteBook_ReturnsReferenceViolation_WhenBookHasCopies(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	GivenCopiesWereAdded(t, repo, book.ISBN, 2)

	// act
	err := repo.DeleteBook(ctx, book.ISBN)

	// assert
	assert.ErrorIs(t, err, store.ErrReferenceViolation)
	_, ok, findErr := repo.FindBook(ctx, book.ISBN)
	require.NoError(t, findErr)
	assert.True(t, ok, "book should still exist")
}

func Test_DeleteBook_ReturnsConcurrencyConflict_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)

	// act
	err := repo.DeleteBook(context.Background(), GivenUniqueISBN())

	// assert
	assert.ErrorIs(t, err, store.ErrConcurrencyConflict)
}
