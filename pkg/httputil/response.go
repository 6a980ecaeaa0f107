// Package httputil provides the shared response envelope and JSON writers
// used by every endpoint.
package httputil

import (
	"encoding/json"
	"net/http"
	"time"
)

// Meta carries pagination metadata for collection responses.
type Meta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Envelope is the standard response body for all endpoints.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Meta      *Meta  `json:"meta,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// WriteSuccess writes a success envelope with the given data and message.
func WriteSuccess(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

// WriteOK writes a 200 success envelope.
func WriteOK(w http.ResponseWriter, data any, message string) {
	WriteSuccess(w, http.StatusOK, data, message)
}

// WriteCreated writes a 201 success envelope with the created resource.
func WriteCreated(w http.ResponseWriter, data any, message string) {
	WriteSuccess(w, http.StatusCreated, data, message)
}

// WriteList writes a 200 success envelope with pagination metadata.
func WriteList(w http.ResponseWriter, data any, message string, meta Meta) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message, Meta: &meta})
}

// WriteError writes a failure envelope with the given status code.
// message is the short human-readable summary, detail the specific cause.
func WriteError(w http.ResponseWriter, status int, message, detail string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message, Error: detail})
}

// Timestamp returns the current UTC time in RFC 3339 format for envelope use.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
