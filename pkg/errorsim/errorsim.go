// Package errorsim maps requested HTTP status codes to canned error
// responses so clients can exercise their error handling deliberately.
package errorsim

import (
	"net/http"
	"strconv"
)

// UnknownMessage is returned for codes outside the lookup table.
const UnknownMessage = "Unknown error"

// FallbackStatus is used when the requested code cannot be parsed or
// cannot be written as an HTTP status line (net/http only accepts
// 100-999).
const FallbackStatus = http.StatusInternalServerError

// messages is the canned lookup table for well-known error codes.
var messages = map[int]string{
	400: "Bad Request - The server cannot process the request",
	401: "Unauthorized - Authentication is required",
	403: "Forbidden - You do not have permission",
	404: "Not Found - The requested resource was not found",
	409: "Conflict - Resource conflict occurred",
	422: "Unprocessable Entity - Validation failed",
	429: "Too Many Requests - Rate limit exceeded",
	500: "Internal Server Error - Something went wrong",
	502: "Bad Gateway - Invalid response from upstream server",
	503: "Service Unavailable - Server is temporarily unavailable",
}

// Lookup returns the canned message for a status code, or UnknownMessage
// for codes outside the table.
func Lookup(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return UnknownMessage
}

// Resolve parses a raw code string into the status to echo and the message
// to return. Non-numeric input and codes net/http cannot write degrade to
// FallbackStatus with UnknownMessage; in-range codes are echoed verbatim
// even when they are not real HTTP statuses (999 stays 999).
func Resolve(raw string) (status int, message string) {
	code, err := strconv.Atoi(raw)
	if err != nil {
		return FallbackStatus, UnknownMessage
	}
	if code < 100 || code > 999 {
		return FallbackStatus, UnknownMessage
	}
	return code, Lookup(code)
}
