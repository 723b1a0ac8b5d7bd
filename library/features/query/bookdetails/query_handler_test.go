package bookdetails_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/query/bookdetails"
	"github.com/AntonStoeckl/library-backend/library/shell/catalogcache"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_ReturnsBook(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	handler := bookdetails.NewQueryHandler(repo)

	// act
	found, err := handler.Handle(context.Background(), bookdetails.BuildQuery(book.ISBN))

	// assert
	require.NoError(t, err)
	assert.Equal(t, book.Title, found.Title)
	assert.ElementsMatch(t, book.Authors, found.Authors)
}

func Test_QueryHandler_Handle_Fails_WhenBookIsUnknown(t *testing.T) {
	// arrange
	repo := NewSQLiteRepository(t)
	handler := bookdetails.NewQueryHandler(repo)

	// act
	_, err := handler.Handle(context.Background(), bookdetails.BuildQuery("9780000000000"))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.EqualError(t, err, "book with ISBN 9780000000000 not found")
}

func Test_QueryHandler_Handle_ServesFromCache_AfterFirstLookup(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	cache := catalogcache.New(10, time.Minute)
	handler := bookdetails.NewQueryHandler(repo, bookdetails.WithCache(cache))

	_, err := handler.Handle(ctx, bookdetails.BuildQuery(book.ISBN))
	require.NoError(t, err)

	changed := book
	changed.Title = "Changed Behind The Cache"
	require.NoError(t, repo.ReplaceBook(ctx, changed))

	// act
	cached, err := handler.Handle(ctx, bookdetails.BuildQuery(book.ISBN))

	// assert
	require.NoError(t, err)
	assert.Equal(t, book.Title, cached.Title)
	assert.Equal(t, 1, cache.Len())
}

func Test_QueryHandler_Handle_ReadsThrough_AfterUpdateEvent(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := NewSQLiteRepository(t)
	book := GivenBookWasAdded(t, repo, FixtureBook())
	cache := catalogcache.New(10, time.Minute)
	handler := bookdetails.NewQueryHandler(repo, bookdetails.WithCache(cache))

	_, err := handler.Handle(ctx, bookdetails.BuildQuery(book.ISBN))
	require.NoError(t, err)

	changed := book
	changed.Title = "Second Edition"
	require.NoError(t, repo.ReplaceBook(ctx, changed))
	require.NoError(t, cache.Publish(ctx, core.BuildBookUpdatedInCatalog(changed, time.Now())))

	// act
	fresh, err := handler.Handle(ctx, bookdetails.BuildQuery(book.ISBN))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Second Edition", fresh.Title)
}
