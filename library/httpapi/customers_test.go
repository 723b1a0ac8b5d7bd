package httpapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/query/customerholdings"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_RegisterCustomer_Returns409WithTheEmail_WhenEmailIsTaken(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	existing := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())
	body := map[string]any{"firstName": "Grace", "lastName": "Hopper", "email": existing.Email}

	// act
	rec := f.do(http.MethodPost, "/customers", body, GivenLibrarian())

	// assert
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, decodeBody[errorBody](t, rec).Error, existing.Email)
}

func Test_UpdateCustomer_Returns409WithTheEmail_WhenEmailBelongsToAnotherCustomer(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	owner := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())
	other := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())
	body := map[string]any{"firstName": other.FirstName, "lastName": other.LastName, "email": owner.Email}

	// act
	rec := f.do(http.MethodPut, "/customers/"+other.ID.String(), body, GivenCustomerActor(other.ID))

	// assert
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, decodeBody[errorBody](t, rec).Error, owner.Email)
}

func Test_RegisterCustomer_Returns201_WhenEmailIsOmitted(t *testing.T) {
	// arrange
	f := newAPIFixture(t)

	// act
	rec := f.do(http.MethodPost, "/customers", map[string]any{"firstName": "Grace", "lastName": "Hopper"}, GivenLibrarian())

	// assert
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody[core.Customer](t, rec)
	_, found, err := f.repo.FindCustomer(t.Context(), created.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func Test_GetCustomer_Returns403_WhenCustomerReadsAnotherCustomer(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	owner := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())
	other := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())

	// act
	rec := f.do(http.MethodGet, "/customers/"+owner.ID.String(), nil, GivenCustomerActor(other.ID))

	// assert
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}

func Test_GetCustomer_Returns200_WhenCustomerReadsThemself(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	owner := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())

	// act
	rec := f.do(http.MethodGet, "/customers/"+owner.ID.String(), nil, GivenCustomerActor(owner.ID))

	// assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, owner, decodeBody[core.Customer](t, rec))
}

func Test_CustomerHoldings_SplitsReservationsAndLoans(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	book := GivenBookWasAdded(t, f.repo, FixtureBook())
	GivenCopiesWereAdded(t, f.repo, book.ISBN, 3)
	customer := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())
	actor := GivenCustomerActor(customer.ID)

	for _, path := range []string{"/reservations", "/borrowings"} {
		rec := f.do(http.MethodPost, path, map[string]any{"bookIsbn": book.ISBN}, actor)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// act
	rec := f.do(http.MethodGet, "/customers/"+customer.ID.String()+"/copies", nil, actor)

	// assert
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	holdings := decodeBody[customerholdings.Holdings](t, rec)
	assert.Len(t, holdings.Reserved, 1)
	assert.Len(t, holdings.Borrowed, 1)
	assert.Equal(t, 2, holdings.Count)
}

func Test_ListCustomers_IsLibrarianOnly(t *testing.T) {
	// arrange
	f := newAPIFixture(t)
	customer := GivenCustomerWasRegistered(t, f.repo, FixtureCustomer())

	// act
	asCustomer := f.do(http.MethodGet, "/admin/customers", nil, GivenCustomerActor(customer.ID))
	asLibrarian := f.do(http.MethodGet, "/admin/customers?size=5", nil, GivenLibrarian())

	// assert
	assert.Equal(t, http.StatusForbidden, asCustomer.Code)
	require.Equal(t, http.StatusOK, asLibrarian.Code, asLibrarian.Body.String())

	page := decodeBody[core.Page[core.Customer]](t, asLibrarian)
	assert.Equal(t, 1, page.TotalItems)
	assert.Equal(t, 5, page.Size)
}
