package httpapi_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/httpapi"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

func Test_SessionManager_RoundTripsTheActor(t *testing.T) {
	// arrange
	sessions, err := httpapi.NewSessionManager(testSessionSecret, time.Hour)
	require.NoError(t, err)
	actor := GivenCustomerActor(GivenUniqueID())

	// act
	token, expiresAt, err := sessions.Sign(actor)
	require.NoError(t, err)
	verified, err := sessions.Verify(token)

	// assert
	require.NoError(t, err)
	assert.Equal(t, actor, verified)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}

func Test_SessionManager_RejectsExpiredTokens(t *testing.T) {
	// arrange
	now := time.Now()
	sessions, err := httpapi.NewSessionManager(testSessionSecret, time.Minute, httpapi.WithSessionClock(func() time.Time { return now }))
	require.NoError(t, err)

	token, _, err := sessions.Sign(GivenLibrarian())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	// act
	_, err = sessions.Verify(token)

	// assert
	assert.ErrorIs(t, err, httpapi.ErrInvalidSession)
}

func Test_SessionManager_RejectsTokensSignedWithAnotherSecret(t *testing.T) {
	// arrange
	other, err := httpapi.NewSessionManager("another-secret", time.Hour)
	require.NoError(t, err)
	sessions, err := httpapi.NewSessionManager(testSessionSecret, time.Hour)
	require.NoError(t, err)

	token, _, err := other.Sign(GivenLibrarian())
	require.NoError(t, err)

	// act
	_, err = sessions.Verify(token)

	// assert
	assert.ErrorIs(t, err, httpapi.ErrInvalidSession)
}

func Test_SessionManager_Issue_SetsAnHTTPOnlyCookie(t *testing.T) {
	// arrange
	sessions, err := httpapi.NewSessionManager(testSessionSecret, time.Hour, httpapi.WithSecureCookies(true))
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	// act
	err = sessions.Issue(rec, GivenLibrarian())

	// assert
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, httpapi.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func Test_NewSessionManager_Fails_WhenSecretIsEmpty(t *testing.T) {
	// act
	_, err := httpapi.NewSessionManager("", time.Hour)

	// assert
	assert.ErrorIs(t, err, httpapi.ErrEmptySessionSecret)
}

func Test_ActorFromContext_IsAnonymous_WhenNothingWasStored(t *testing.T) {
	// act
	actor := httpapi.ActorFromContext(t.Context())

	// assert
	assert.False(t, actor.IsAuthenticated())
}
