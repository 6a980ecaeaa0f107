// User CRUD handlers.

package server

import (
	"errors"
	"net/http"

	"github.com/devstub/devstub/pkg/httputil"
	"github.com/devstub/devstub/pkg/store"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	params := store.ParseListParams(r.URL.Query())

	filtered := store.FilterUsers(s.store.ListUsers(), params.Search)
	page := store.Paginate(filtered, params.Page, params.Limit)

	httputil.WriteList(w, usersJSON(page), "Users retrieved successfully",
		store.PageMeta(len(filtered), params.Page, params.Limit))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "User")
	if !ok {
		return
	}

	user, err := s.store.GetUser(id)
	if err != nil {
		writeTypedError(w, err, "User not found")
		return
	}

	httputil.WriteOK(w, user.ToJSON(), "User retrieved successfully")
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	if err := store.ValidateUser(fields); err != nil {
		writeTypedError(w, err, "Validation failed")
		return
	}

	user, err := s.store.CreateUser(fields)
	if err != nil {
		var dup *store.DuplicateEmailError
		if errors.As(err, &dup) {
			httputil.WriteError(w, http.StatusConflict, "User already exists",
				"A user with this email already exists")
			return
		}
		writeTypedError(w, err, "Failed to create user")
		return
	}

	httputil.WriteCreated(w, user.ToJSON(), "User created successfully")
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "User")
	if !ok {
		return
	}

	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	// Existence is checked before validation so an unknown id reports 404
	// even with an invalid body.
	if _, err := s.store.GetUser(id); err != nil {
		writeTypedError(w, err, "User not found")
		return
	}

	if err := store.ValidateUser(fields); err != nil {
		writeTypedError(w, err, "Validation failed")
		return
	}

	user, err := s.store.UpdateUser(id, fields)
	if err != nil {
		var dup *store.DuplicateEmailError
		if errors.As(err, &dup) {
			httputil.WriteError(w, http.StatusConflict, "Email already taken",
				"This email is already registered to another user")
			return
		}
		writeTypedError(w, err, "User not found")
		return
	}

	httputil.WriteOK(w, user.ToJSON(), "User updated successfully")
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "User")
	if !ok {
		return
	}

	user, err := s.store.DeleteUser(id)
	if err != nil {
		writeTypedError(w, err, "User not found")
		return
	}

	httputil.WriteOK(w, user.ToJSON(), "User deleted successfully")
}
