package httpapi_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/httpapi"
	"github.com/AntonStoeckl/library-backend/library/shell/passwords"
	"github.com/AntonStoeckl/library-backend/store/sqlengine"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

const testSessionSecret = "a-session-secret-used-only-in-tests"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type apiFixture struct {
	t        *testing.T
	repo     *sqlengine.Repository
	sessions *httpapi.SessionManager
	server   *httpapi.Server
	logs     *LogHandlerSpy
}

func newAPIFixture(t *testing.T, opts ...httpapi.Option) *apiFixture {
	t.Helper()

	repo := NewSQLiteRepository(t)
	sessions, err := httpapi.NewSessionManager(testSessionSecret, time.Hour)
	require.NoError(t, err)

	logs := NewLogHandlerSpy(false)
	opts = append([]httpapi.Option{
		httpapi.WithLogger(slog.New(logs)),
		httpapi.WithPasswordHasher(passwords.NewFastHasher()),
	}, opts...)

	server, err := httpapi.NewServer(repo, sessions, opts...)
	require.NoError(t, err)

	return &apiFixture{t: t, repo: repo, sessions: sessions, server: server, logs: logs}
}

// do sends a request with an optional JSON body, authenticated as actor unless actor is anonymous.
func (f *apiFixture) do(method, path string, body any, actor core.Actor) *httptest.ResponseRecorder {
	f.t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if actor.IsAuthenticated() {
		token, _, err := f.sessions.Sign(actor)
		require.NoError(f.t, err)
		req.AddCookie(&http.Cookie{Name: httpapi.SessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

// login posts credentials and returns the session cookie.
func (f *apiFixture) login(username, password string) *http.Cookie {
	f.t.Helper()

	rec := f.do(http.MethodPost, "/login", map[string]string{"username": username, "password": password}, GivenAnonymous())
	require.Equal(f.t, http.StatusOK, rec.Code, rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == httpapi.SessionCookieName {
			return cookie
		}
	}

	require.FailNow(f.t, "login did not set a session cookie")

	return nil
}

// doWithCookie sends a request authenticated by a cookie from login.
func (f *apiFixture) doWithCookie(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	f.t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

// givenLibrarianAccount stores a librarian login directly, like the create-librarian command does.
func (f *apiFixture) givenLibrarianAccount(username, password string) {
	f.t.Helper()

	hash, err := passwords.NewFastHasher().Hash(password)
	require.NoError(f.t, err)

	user := core.User{ID: GivenUniqueID(), Username: username, PasswordHash: hash, Role: core.RoleLibrarian}
	require.NoError(f.t, f.repo.InsertUser(f.t.Context(), user, nil))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
