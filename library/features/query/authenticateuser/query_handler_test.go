package authenticateuser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/query/authenticateuser"
	"github.com/AntonStoeckl/library-backend/library/shell/passwords"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func givenLibrarianUser(t *testing.T, hasher passwords.Hasher) (authenticateuser.QueryHandler, core.User) {
	t.Helper()

	repo := NewSQLiteRepository(t)
	hash, err := hasher.Hash("s3cret-desk")
	require.NoError(t, err)

	user := core.User{ID: GivenUniqueID(), Username: "desk", PasswordHash: hash, Role: core.RoleLibrarian}
	require.NoError(t, repo.InsertUser(context.Background(), user, nil))

	return authenticateuser.NewQueryHandler(repo, hasher), user
}

func Test_QueryHandler_Handle_ReturnsActor_ForValidCredentials(t *testing.T) {
	// arrange
	handler, user := givenLibrarianUser(t, passwords.NewFastHasher())

	// act
	actor, err := handler.Handle(context.Background(), authenticateuser.BuildQuery(" desk ", "s3cret-desk"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ActorFromUser(user), actor)
	assert.True(t, actor.IsLibrarian())
}

func Test_QueryHandler_Handle_Fails_ForWrongPassword(t *testing.T) {
	// arrange
	handler, _ := givenLibrarianUser(t, passwords.NewFastHasher())

	// act
	_, err := handler.Handle(context.Background(), authenticateuser.BuildQuery("desk", "wrong-password"))

	// assert
	assert.ErrorIs(t, err, core.ErrUnauthenticated)
}

func Test_QueryHandler_Handle_Fails_ForUnknownUser(t *testing.T) {
	// arrange
	handler, _ := givenLibrarianUser(t, passwords.NewFastHasher())

	// act
	_, err := handler.Handle(context.Background(), authenticateuser.BuildQuery("nobody", "s3cret-desk"))

	// assert
	assert.ErrorIs(t, err, core.ErrUnauthenticated)
	assert.EqualError(t, err, "invalid username or password")
}
