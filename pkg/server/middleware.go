// Recovery and request logging middleware for the mock server.

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/devstub/devstub/pkg/httputil"
)

// statusRecorder captures the status code written to a ResponseWriter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one debug line per request with the outcome and timing.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// recoverPanics converts handler panics into a generic 500 envelope. The
// underlying detail is only exposed in dev mode.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("handler panic", "method", r.Method, "path", r.URL.Path, "panic", rec)
				detail := "Something went wrong"
				if s.cfg.DevMode {
					detail = fmt.Sprint(rec)
				}
				httputil.WriteError(w, http.StatusInternalServerError, "Internal server error", detail)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
