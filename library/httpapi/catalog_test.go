package httpapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/httpapi"
	"github.com/AntonStoeckl/library-backend/library/shell/catalogcache"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_AddBook_Returns409_WhenISBNIsAlreadyCataloged(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())

	// act
	rec := f.do(http.MethodPost, "/admin/books", book, GivenLibrarian())

	// assert
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, decodeBody[errorBody](t, rec).Error, book.ISBN)
}

func Test_AddBook_Returns400WithFields_WhenInputIsInvalid(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	body := map[string]any{"isbn": "12-34", "title": " ", "publicationYear": 0, "authors": []string{}}

	// act
	rec := f.do(http.MethodPost, "/admin/books", body, GivenLibrarian())

	// assert
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	fields := decodeBody[errorBody](t, rec).Fields
	assert.Contains(t, fields, "isbn")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "publicationYear")
	assert.Contains(t, fields, "authors")
}

func Test_AddBook_Returns401_WhenAnonymous(t *testing.T) {
	// arrange
	f := newAPIFixture(t)

	// act
	rec := f.do(http.MethodPost, "/admin/books", FixtureBook(), GivenAnonymous())

	// assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}

func Test_AddBook_Returns400_WhenBodyIsNotJSON(t *testing.T) {
	// arrange
	f := newAPIFixture(t)

	// act
	rec := f.do(http.MethodPost, "/admin/books", "not an object", GivenLibrarian())

	// assert
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, decodeBody[errorBody](t, rec).Fields, "body")
}

func Test_GetBook_IsPublic(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())

	// act
	rec := f.do(http.MethodGet, "/books/"+book.ISBN, nil, GivenAnonymous())

	// assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, book.Title, decodeBody[core.Book](t, rec).Title)
}

func Test_GetBook_Returns404_WhenISBNIsUnknown(t *testing.T) {
	// arrange
	f := newAPIFixture(t)

	// act
	rec := f.do(http.MethodGet, "/books/"+GivenUniqueISBN(), nil, GivenAnonymous())

	// assert
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func Test_UpdateBook_EvictsTheCachedBook(t *testing.T) {
	// arrange
	cache := catalogcache.New(16, 0)
	f := newAPIFixture(t, httpapi.WithCatalogCache(cache))
	book := GivenBookWasAdded(t, f.repo, FixtureBook())

	rec := f.do(http.MethodGet, "/books/"+book.ISBN, nil, GivenAnonymous())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	changed := book
	changed.Title = "A New Title"

	// act
	rec = f.do(http.MethodPut, "/admin/books/"+book.ISBN, changed, GivenLibrarian())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// assert
	rec = f.do(http.MethodGet, "/books/"+book.ISBN, nil, GivenAnonymous())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "A New Title", decodeBody[core.Book](t, rec).Title)
}

func Test_RemoveBook_Returns409_WhenCopiesExist(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())
	GivenCopiesWereAdded(t, f.repo, book.ISBN, 2)

	// act
	rec := f.do(http.MethodDelete, "/admin/books/"+book.ISBN, nil, GivenLibrarian())

	// assert
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func Test_RemoveBook_Returns204_WhenBookHasNoCopies(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())

	// act
	rec := f.do(http.MethodDelete, "/admin/books/"+book.ISBN, nil, GivenLibrarian())

	// assert
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(http.MethodGet, "/books/"+book.ISBN, nil, GivenAnonymous())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_SearchBooks_FiltersByTitle(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	wanted := FixtureBook()
	wanted.Title = "Concurrency in Practice"
	GivenBookWasAdded(t, f.repo, wanted)
	GivenBookWasAdded(t, f.repo, FixtureBook())

	// act
	rec := f.do(http.MethodGet, "/books/search?title=concurrency", nil, GivenAnonymous())

	// assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	page := decodeBody[core.Page[core.Book]](t, rec)
	require.Len(t, page.Items, 1)
	assert.Equal(t, wanted.ISBN, page.Items[0].ISBN)
}

func Test_ListBooks_Returns400_WhenPageIsNotANumber(t *testing.T) {
	// arrange
	f := newAPIFixture(t)

	// act
	rec := f.do(http.MethodGet, "/books?page=first", nil, GivenAnonymous())

	// assert
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "must be a whole number", decodeBody[errorBody](t, rec).Fields["page"])
}

func Test_AddCopies_Returns404_WhenBookIsUnknown(t *testing.T) {
	// arrange
	f := newAPIFixture(t)

	// act
	rec := f.do(http.MethodPost, "/admin/copies", map[string]any{"bookIsbn": GivenUniqueISBN(), "quantity": 1}, GivenLibrarian())

	// assert
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func Test_AddCopies_Returns400_WhenQuantityIsOutOfRange(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())

	// act
	rec := f.do(http.MethodPost, "/admin/copies", map[string]any{"bookIsbn": book.ISBN, "quantity": 101}, GivenLibrarian())

	// assert
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, decodeBody[errorBody](t, rec).Fields, "quantity")
}

func Test_GetCopy_Returns403_WhenActorIsACustomer(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())
	copies := GivenCopiesWereAdded(t, f.repo, book.ISBN, 1)

	// act
	rec := f.do(http.MethodGet, "/admin/copies/"+copies[0].ID.String(), nil, GivenCustomerActor(GivenUniqueID()))

	// assert
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}
