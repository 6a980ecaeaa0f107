package store

import (
	"strconv"
	"time"
)

// User is a mock user record. Required fields (name, username, email) and
// any free-form fields (address, phone, website, company) live in Data;
// id and timestamps are system fields.
type User struct {
	ID        int
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Email returns the user's email, or "" if absent.
func (u *User) Email() string {
	return stringField(u.Data, "email")
}

// Name returns the user's name, or "" if absent.
func (u *User) Name() string {
	return stringField(u.Data, "name")
}

// ToJSON flattens the user into a JSON-compatible map. Free-form fields
// are merged at the root level alongside id and timestamps.
func (u *User) ToJSON() map[string]any {
	result := make(map[string]any, len(u.Data)+3)
	for k, v := range u.Data {
		result[k] = v
	}
	result["id"] = u.ID
	result["createdAt"] = u.CreatedAt.UTC().Format(time.RFC3339)
	result["updatedAt"] = u.UpdatedAt.UTC().Format(time.RFC3339)
	return result
}

// Post is a mock post record belonging to a user via UserID.
type Post struct {
	ID        int
	UserID    int
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Title returns the post's title, or "" if absent.
func (p *Post) Title() string {
	return stringField(p.Data, "title")
}

// Body returns the post's body, or "" if absent.
func (p *Post) Body() string {
	return stringField(p.Data, "body")
}

// ToJSON flattens the post into a JSON-compatible map.
func (p *Post) ToJSON() map[string]any {
	result := make(map[string]any, len(p.Data)+4)
	for k, v := range p.Data {
		result[k] = v
	}
	result["id"] = p.ID
	result["userId"] = p.UserID
	result["createdAt"] = p.CreatedAt.UTC().Format(time.RFC3339)
	result["updatedAt"] = p.UpdatedAt.UTC().Format(time.RFC3339)
	return result
}

// stringField extracts a non-empty string value from a field map.
// Returns "" when the field is absent or not a string.
func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// intField extracts an int value from a field map, accepting the numeric
// types produced by JSON decoding as well as numeric strings. The second
// return reports whether a usable value was found.
func intField(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}

// cloneFields returns a shallow copy of a field map, dropping system keys
// so client-supplied bodies cannot override identity or timestamps.
func cloneFields(fields map[string]any, system ...string) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	for _, k := range system {
		delete(out, k)
	}
	delete(out, "id")
	delete(out, "createdAt")
	delete(out, "updatedAt")
	return out
}
