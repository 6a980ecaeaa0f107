// Health, error injection, and timeout endpoints.

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/devstub/devstub/pkg/errorsim"
	"github.com/devstub/devstub/pkg/httputil"
)

// healthResponse is the root endpoint's body. It doubles as a directory of
// the available endpoint groups.
type healthResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Mock API test server is running!",
		Timestamp: httputil.Timestamp(),
		Endpoints: map[string]string{
			"users":   "/users",
			"posts":   "/posts",
			"auth":    "/login, /register",
			"files":   "/upload, /download/:filename",
			"errors":  "/errors/:code",
			"timeout": "/timeout",
		},
	})
}

func (s *Server) handleErrorInjection(w http.ResponseWriter, r *http.Request) {
	status, message := errorsim.Resolve(r.PathValue("code"))

	httputil.WriteJSON(w, status, httputil.Envelope{
		Success:   false,
		Message:   fmt.Sprintf("Error %d", status),
		Error:     message,
		Timestamp: httputil.Timestamp(),
	})
}

func (s *Server) handleTimeout(w http.ResponseWriter, r *http.Request) {
	time.Sleep(s.timeoutDelay)
	httputil.WriteOK(w, nil, "This response was delayed by 5 seconds")
}
