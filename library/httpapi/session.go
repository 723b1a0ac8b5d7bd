package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// SessionCookieName is the name of the cookie carrying the signed session token.
const SessionCookieName = "library_session"

const sessionIssuer = "library-backend"

var (
	// ErrEmptySessionSecret is returned when the session secret is empty.
	ErrEmptySessionSecret = errors.New("session secret must not be empty")

	// ErrNonPositiveSessionTTL is returned when the session lifetime is not positive.
	ErrNonPositiveSessionTTL = errors.New("session ttl must be positive")

	// ErrInvalidSession is returned for tokens that are malformed, forged or expired.
	ErrInvalidSession = errors.New("invalid session")
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Username   string    `json:"username"`
	Role       core.Role `json:"role"`
	CustomerID string    `json:"customer_id,omitempty"`
}

// SessionManager issues and verifies HS256 signed session cookies.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithSecureCookies marks the session cookie as Secure, so browsers only send it over HTTPS.
func WithSecureCookies(secure bool) SessionOption {
	return func(m *SessionManager) {
		m.secure = secure
	}
}

// WithSessionClock replaces time.Now, for tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		m.now = now
	}
}

// NewSessionManager creates a SessionManager that signs with secret.
func NewSessionManager(secret string, ttl time.Duration, opts ...SessionOption) (*SessionManager, error) {
	if secret == "" {
		return nil, ErrEmptySessionSecret
	}

	if ttl <= 0 {
		return nil, ErrNonPositiveSessionTTL
	}

	m := &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Issue signs a token for actor and sets it as session cookie.
func (m *SessionManager) Issue(w http.ResponseWriter, actor core.Actor) error {
	token, expiresAt, err := m.Sign(actor)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Sign returns the session token for actor and its expiry.
func (m *SessionManager) Sign(actor core.Actor) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   actor.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: actor.Username,
		Role:     actor.Role,
	}

	if actor.CustomerID.Valid {
		claims.CustomerID = actor.CustomerID.UUID.String()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ActorFrom returns the actor of the request's session cookie.
// Without a cookie the anonymous actor is returned, a bad cookie yields ErrInvalidSession.
func (m *SessionManager) ActorFrom(r *http.Request) (core.Actor, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return core.Actor{}, nil
	}

	return m.Verify(cookie.Value)
}

// Verify parses token and returns the actor it was issued for.
func (m *SessionManager) Verify(token string) (core.Actor, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return core.Actor{}, errors.Join(ErrInvalidSession, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || !claims.Role.IsValid() {
		return core.Actor{}, ErrInvalidSession
	}

	actor := core.Actor{UserID: userID, Username: claims.Username, Role: claims.Role}

	if claims.CustomerID != "" {
		customerID, parseErr := uuid.Parse(claims.CustomerID)
		if parseErr != nil {
			return core.Actor{}, ErrInvalidSession
		}

		actor.CustomerID = core.NullableID(customerID)
	}

	return actor, nil
}

type actorKey struct{}

// WithActor stores the actor of the current request in the context.
func WithActor(ctx context.Context, actor core.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored in the context, or the anonymous actor.
func ActorFromContext(ctx context.Context) core.Actor {
	actor, _ := ctx.Value(actorKey{}).(core.Actor)
	return actor
}
