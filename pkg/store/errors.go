package store

import (
	"fmt"
	"net/http"
)

// NotFoundError is returned when a user or post id is not present.
type NotFoundError struct {
	Resource string // "User" or "Post"
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d does not exist", e.Resource, e.ID)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// DuplicateEmailError is returned when a create or update would leave two
// users sharing an email.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %q is already registered", e.Email)
}

// StatusCode returns the HTTP status code for this error.
func (e *DuplicateEmailError) StatusCode() int {
	return http.StatusConflict
}

// InvalidReferenceError is returned when a post names a userId that does
// not reference an existing user.
type InvalidReferenceError struct {
	UserID int
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("User with ID %d does not exist", e.UserID)
}

// StatusCode returns the HTTP status code for this error.
func (e *InvalidReferenceError) StatusCode() int {
	return http.StatusBadRequest
}

// ValidationError is returned when input validation fails.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// StatusCodeError is an interface for errors that carry an HTTP status code.
type StatusCodeError interface {
	error
	StatusCode() int
}
