package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registeruser"
	"github.com/AntonStoeckl/library-backend/library/features/query/authenticateuser"
	"github.com/AntonStoeckl/library-backend/library/features/query/whoami"
	"github.com/AntonStoeckl/library-backend/library/shell/passwords"
)

const (
	msgLoginSuccessful  = "login successful"
	msgLoginFailed      = "invalid username or password"
	msgLoggedOut        = "logged out"
	contentTypeFormPost = "application/x-www-form-urlencoded"
)

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type registeredUser struct {
	ID         uuid.UUID     `json:"id"`
	Username   string        `json:"username"`
	Role       core.Role     `json:"role"`
	CustomerID uuid.NullUUID `json:"customerId"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	var passwordHash string
	if body.Password != "" {
		hash, err := s.hasher.Hash(body.Password)
		switch {
		case errors.Is(err, passwords.ErrTooShort), errors.Is(err, passwords.ErrTooLong):
			s.writeError(w, r, core.ValidationFailed(map[string]string{"password": err.Error()}))
			return
		case err != nil:
			s.writeError(w, r, err)
			return
		}

		passwordHash = hash
	}

	profile := registeruser.Profile{FirstName: body.FirstName, LastName: body.LastName, Email: body.Email}
	command := registeruser.BuildCommand(s.actor(r.Context()), body.Username, passwordHash, core.Role(body.Role), profile, s.now())

	if _, err := s.registerUser.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registeredUser{
		ID:         command.User.ID,
		Username:   command.User.Username,
		Role:       command.User.Role,
		CustomerID: command.User.CustomerID,
	})
}

// handleLogin accepts JSON credentials as well as a classic form post.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	creds, err := s.readCredentials(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	actor, err := s.authenticateUser.Handle(r.Context(), authenticateuser.BuildQuery(creds.Username, creds.Password))
	if err != nil {
		if errors.Is(err, core.ErrUnauthenticated) {
			writeText(w, http.StatusUnauthorized, msgLoginFailed)
			return
		}

		s.writeError(w, r, err)
		return
	}

	if err := s.sessions.Issue(w, actor); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, msgLoginSuccessful)
}

func (s *Server) readCredentials(w http.ResponseWriter, r *http.Request) (credentials, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), contentTypeFormPost) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := r.ParseForm(); err != nil {
			return credentials{}, core.ValidationFailed(map[string]string{"body": "must be a valid form"})
		}

		return credentials{Username: r.PostForm.Get("username"), Password: r.PostForm.Get("password")}, nil
	}

	var creds credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		return credentials{}, err
	}

	return creds, nil
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.sessions.Clear(w)
	writeText(w, http.StatusOK, msgLoggedOut)
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	identity, err := s.whoAmI.Handle(r.Context(), whoami.BuildQuery(s.actor(r.Context())))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, identity)
}
