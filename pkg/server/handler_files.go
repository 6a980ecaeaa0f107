// Upload and download gateway handlers. These bypass latency simulation.

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/devstub/devstub/pkg/httputil"
	"github.com/devstub/devstub/pkg/upload"
)

// baseURL reconstructs the scheme-and-host prefix for download URLs.
func baseURL(r *http.Request) string {
	return "http://" + r.Host
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	infos, err := s.uploads.Save(r, baseURL(r))
	if err != nil {
		var (
			tooLarge *upload.FileTooLargeError
			tooMany  *upload.TooManyFilesError
		)
		switch {
		case errors.As(err, &tooLarge):
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, "File too large", tooLarge.Error())
		case errors.As(err, &tooMany):
			httputil.WriteError(w, http.StatusBadRequest, "Too many files", tooMany.Error())
		default:
			writeTypedError(w, err, "No files uploaded")
		}
		return
	}

	httputil.WriteOK(w, infos, fmt.Sprintf("Successfully uploaded %d file(s)", len(infos)))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")

	path, err := s.uploads.Path(name)
	if err != nil {
		writeTypedError(w, err, "File not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

// handleServeUpload serves uploads inline, backing the URLs returned by
// the upload endpoint.
func (s *Server) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	path, err := s.uploads.Path(r.PathValue("filename"))
	if err != nil {
		writeTypedError(w, err, "File not found")
		return
	}
	http.ServeFile(w, r, path)
}
