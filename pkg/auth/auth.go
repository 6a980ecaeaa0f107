// Package auth implements the mock authentication flows. Tokens are
// opaque identifiers with a fixed prefix and carry no verifiable claims;
// the reported expiry is informational and never enforced.
package auth

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/devstub/devstub/pkg/store"
)

// MockPassword is the single password accepted by login. There is no real
// credential verification.
const MockPassword = "password123"

// TokenPrefix marks every issued mock token.
const TokenPrefix = "mock-jwt-token-"

// TokenExpiry is the expiry reported alongside tokens. It is a fixed
// string and is not checked anywhere.
const TokenExpiry = "24h"

// MissingCredentialsError is returned when email or password is absent.
type MissingCredentialsError struct{}

func (e *MissingCredentialsError) Error() string {
	return "Email and password are required"
}

// StatusCode returns the HTTP status code for this error.
func (e *MissingCredentialsError) StatusCode() int {
	return http.StatusBadRequest
}

// AuthenticationFailedError is returned for an unknown email or a wrong
// password. Both cases produce the same error so callers cannot probe
// which emails exist.
type AuthenticationFailedError struct{}

func (e *AuthenticationFailedError) Error() string {
	return "Invalid email or password"
}

// StatusCode returns the HTTP status code for this error.
func (e *AuthenticationFailedError) StatusCode() int {
	return http.StatusUnauthorized
}

// Session is the payload returned by successful login and register calls.
type Session struct {
	User      map[string]any `json:"user"`
	Token     string         `json:"token"`
	ExpiresIn string         `json:"expiresIn"`
}

// Simulator issues mock sessions against the resource store.
type Simulator struct {
	store *store.Store
}

// NewSimulator creates a Simulator backed by the given store.
func NewSimulator(s *store.Store) *Simulator {
	return &Simulator{store: s}
}

// Login looks up the user by email and checks the password against the
// mock value. On success a fresh token is issued.
func (a *Simulator) Login(email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, &MissingCredentialsError{}
	}

	user := a.store.FindUserByEmail(email)
	if user == nil || password != MockPassword {
		return nil, &AuthenticationFailedError{}
	}

	return newSession(user), nil
}

// Register validates the candidate fields and creates the user exactly as
// a direct create would, then issues a token as Login does.
func (a *Simulator) Register(fields map[string]any) (*Session, error) {
	if err := store.ValidateUser(fields); err != nil {
		return nil, err
	}

	user, err := a.store.CreateUser(fields)
	if err != nil {
		return nil, err
	}

	return newSession(user), nil
}

// newSession builds a session with a unique token for the user.
func newSession(user *store.User) *Session {
	return &Session{
		User:      user.ToJSON(),
		Token:     TokenPrefix + uuid.NewString(),
		ExpiresIn: TokenExpiry,
	}
}
