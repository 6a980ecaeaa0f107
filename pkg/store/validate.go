package store

import "strings"

// Validation messages, shared by create, update, and register flows.
const (
	msgRequiredUserFields = "Name, email, and username are required"
	msgInvalidEmail       = "Invalid email format"
)

// ValidateUser checks a candidate user's fields: name, email, and username
// must be present and non-empty, and the email must contain an "@". It is
// used identically for create, update, and register.
func ValidateUser(fields map[string]any) error {
	name := stringField(fields, "name")
	email := stringField(fields, "email")
	username := stringField(fields, "username")

	if name == "" || email == "" || username == "" {
		return &ValidationError{Message: msgRequiredUserFields}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Message: msgInvalidEmail}
	}
	return nil
}
