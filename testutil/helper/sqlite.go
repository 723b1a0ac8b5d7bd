package helper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell/config"
	"github.com/AntonStoeckl/library-backend/store/sqlengine"
)

// PostgresDSNEnv names the environment variable that enables tests against PostgreSQL.
const PostgresDSNEnv = "LIBRARY_TEST_POSTGRES_DSN"

// NewSQLiteRepository creates a migrated Repository on a fresh SQLite file in t.TempDir().
func NewSQLiteRepository(t testing.TB, options ...sqlengine.Option) *sqlengine.Repository {
	t.Helper()

	ctx := context.Background()

	db, err := config.SQLiteDB(ctx, filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err, "opening the sqlite database should work")
	t.Cleanup(func() { _ = db.Close() })

	options = append([]sqlengine.Option{sqlengine.WithDialect(sqlengine.DialectSQLite)}, options...)
	repo, err := sqlengine.NewRepositoryFromSQLDB(db, options...)
	require.NoError(t, err, "creating the repository should work")
	require.NoError(t, repo.Migrate(ctx), "migrating the database should work")

	return repo
}

// NewPostgresRepository creates a migrated Repository on the database named by LIBRARY_TEST_POSTGRES_DSN.
// The test is skipped when the variable is not set.
func NewPostgresRepository(t testing.TB, options ...sqlengine.Option) *sqlengine.Repository {
	t.Helper()

	dsn := os.Getenv(PostgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", PostgresDSNEnv)
	}

	ctx := context.Background()

	pool, err := config.PostgresPGXPool(ctx, dsn)
	require.NoError(t, err, "connecting to postgres should work")
	t.Cleanup(pool.Close)

	repo, err := sqlengine.NewRepositoryFromPGXPool(pool, options...)
	require.NoError(t, err, "creating the repository should work")
	require.NoError(t, repo.Migrate(ctx), "migrating the database should work")

	return repo
}

// GivenUniqueID returns a fresh random id.
func GivenUniqueID() uuid.UUID {
	return uuid.New()
}

// GivenUniqueISBN returns a random ISBN-13, so tests sharing a database don't collide.
func GivenUniqueISBN() core.ISBNString {
	return fmt.Sprintf("978%010d", rand.Int64N(10_000_000_000))
}

// FixtureBook returns a valid book with a unique ISBN.
func FixtureBook() core.Book {
	return core.Book{
		ISBN:            GivenUniqueISBN(),
		Title:           "The Go Programming Language",
		PublicationYear: 2015,
		Authors:         []core.AuthorNameString{"Alan Donovan", "Brian Kernighan"},
	}
}

// FixtureCustomer returns a valid customer with a unique email.
func FixtureCustomer() core.Customer {
	id := GivenUniqueID()

	return core.Customer{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada-" + id.String() + "@example.com",
	}
}

// GivenBookWasAdded stores book.
func GivenBookWasAdded(t testing.TB, repo *sqlengine.Repository, book core.Book) core.Book {
	t.Helper()

	require.NoError(t, repo.InsertBook(context.Background(), book), "adding the book should work")

	return book
}

// GivenCopiesWereAdded stores quantity AVAILABLE copies of the book and returns them.
func GivenCopiesWereAdded(t testing.TB, repo *sqlengine.Repository, isbn core.ISBNString, quantity int) []core.Copy {
	t.Helper()

	ids := make([]uuid.UUID, 0, quantity)
	for range quantity {
		ids = append(ids, GivenUniqueID())
	}

	require.NoError(t, repo.InsertCopies(context.Background(), isbn, ids), "adding copies should work")

	return core.BuildBookCopiesAddedToInventory(isbn, ids, time.Now()).Copies()
}

// GivenCustomerWasRegistered stores customer.
func GivenCustomerWasRegistered(t testing.TB, repo *sqlengine.Repository, customer core.Customer) core.Customer {
	t.Helper()

	require.NoError(t, repo.InsertCustomer(context.Background(), customer), "registering the customer should work")

	return customer
}

// GivenCopyWasTransitioned applies a lifecycle event to the stored copy.
func GivenCopyWasTransitioned(t testing.TB, repo *sqlengine.Repository, current core.Copy, event core.DomainEvent) core.Copy {
	t.Helper()

	next := core.EvolveCopy(current, event)
	require.NoError(t, repo.TransitionCopy(context.Background(), current, next), "transitioning the copy should work")

	return next
}
