// Shared request decoding and error mapping for handlers.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/devstub/devstub/pkg/httputil"
	"github.com/devstub/devstub/pkg/store"
)

// decodeBody parses a JSON object request body. A missing body decodes to
// an empty field map so presence validation produces the right message.
func decodeBody(r *http.Request) (map[string]any, error) {
	fields := make(map[string]any)
	if r.Body == nil {
		return fields, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return fields, nil
}

// pathID parses the {id} path segment. On non-numeric input it writes the
// same not-found envelope a missing id would produce and returns false.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request, resource string) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound,
			resource+" not found",
			fmt.Sprintf("%s with ID %s does not exist", resource, raw))
		return 0, false
	}
	return id, true
}

// writeBadBody writes the envelope for an unparsable request body.
func writeBadBody(w http.ResponseWriter, err error) {
	httputil.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
}

// writeTypedError maps a typed store/auth/upload error to an envelope with
// the given summary message, using the error's status code and text.
func writeTypedError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	var sc store.StatusCodeError
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	httputil.WriteError(w, status, message, err.Error())
}

// usersJSON flattens users for the response body.
func usersJSON(users []*store.User) []map[string]any {
	out := make([]map[string]any, len(users))
	for i, u := range users {
		out[i] = u.ToJSON()
	}
	return out
}

// postsJSON flattens posts for the response body.
func postsJSON(posts []*store.Post) []map[string]any {
	out := make([]map[string]any, len(posts))
	for i, p := range posts {
		out[i] = p.ToJSON()
	}
	return out
}
