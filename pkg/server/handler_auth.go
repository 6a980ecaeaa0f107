// Mock authentication handlers.

package server

import (
	"errors"
	"net/http"

	"github.com/devstub/devstub/pkg/auth"
	"github.com/devstub/devstub/pkg/httputil"
	"github.com/devstub/devstub/pkg/store"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	email, _ := fields["email"].(string)
	password, _ := fields["password"].(string)

	session, err := s.auth.Login(email, password)
	if err != nil {
		var failed *auth.AuthenticationFailedError
		if errors.As(err, &failed) {
			httputil.WriteError(w, http.StatusUnauthorized, "Authentication failed", failed.Error())
			return
		}
		writeTypedError(w, err, "Validation failed")
		return
	}

	httputil.WriteOK(w, session, "Login successful")
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	session, err := s.auth.Register(fields)
	if err != nil {
		var dup *store.DuplicateEmailError
		if errors.As(err, &dup) {
			httputil.WriteError(w, http.StatusConflict, "User already exists",
				"A user with this email already exists")
			return
		}
		writeTypedError(w, err, "Validation failed")
		return
	}

	httputil.WriteCreated(w, session, "User registered successfully")
}
