// Package upload implements the filesystem-backed upload and download
// gateway. Stored blobs are named by upload timestamp plus the original
// file name; nothing survives a process restart on purpose.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Gateway limits.
const (
	MaxFiles    = 5
	MaxFileSize = 10 << 20 // 10MB per file
)

// FormField is the multipart field carrying the uploaded files.
const FormField = "files"

// NoFilesError is returned when a request carries no files.
type NoFilesError struct{}

func (e *NoFilesError) Error() string {
	return "Please select at least one file to upload"
}

// StatusCode returns the HTTP status code for this error.
func (e *NoFilesError) StatusCode() int {
	return http.StatusBadRequest
}

// TooManyFilesError is returned when a request exceeds MaxFiles.
type TooManyFilesError struct{ Count int }

func (e *TooManyFilesError) Error() string {
	return fmt.Sprintf("At most %d files may be uploaded per request", MaxFiles)
}

// StatusCode returns the HTTP status code for this error.
func (e *TooManyFilesError) StatusCode() int {
	return http.StatusBadRequest
}

// FileTooLargeError is returned when a single file exceeds MaxFileSize.
type FileTooLargeError struct{ Name string }

func (e *FileTooLargeError) Error() string {
	return "The uploaded file exceeds the size limit"
}

// StatusCode returns the HTTP status code for this error.
func (e *FileTooLargeError) StatusCode() int {
	return http.StatusRequestEntityTooLarge
}

// NotFoundError is returned when a requested download does not exist.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File %s does not exist", e.Name)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// FileInfo describes one stored upload, as reported to the client.
type FileInfo struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
	URL          string `json:"url"`
}

// Gateway persists and retrieves uploaded blobs under a single directory.
type Gateway struct {
	dir string
	now func() time.Time
}

// New creates a Gateway storing files under dir, creating it if needed.
func New(dir string) (*Gateway, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Gateway{dir: dir, now: time.Now}, nil
}

// Dir returns the upload directory.
func (g *Gateway) Dir() string {
	return g.dir
}

// Save stores every file in the request's multipart form. baseURL is the
// scheme-and-host prefix used to build download URLs. All-or-nothing is
// not guaranteed: a failure partway leaves earlier files on disk, which is
// acceptable for a mock server.
func (g *Gateway) Save(r *http.Request, baseURL string) ([]FileInfo, error) {
	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		return nil, &NoFilesError{}
	}

	form := r.MultipartForm
	if form == nil || len(form.File[FormField]) == 0 {
		return nil, &NoFilesError{}
	}

	headers := form.File[FormField]
	if len(headers) > MaxFiles {
		return nil, &TooManyFilesError{Count: len(headers)}
	}

	infos := make([]FileInfo, 0, len(headers))
	for _, hdr := range headers {
		if hdr.Size > MaxFileSize {
			return nil, &FileTooLargeError{Name: hdr.Filename}
		}

		name := fmt.Sprintf("%d-%s", g.now().UnixMilli(), filepath.Base(hdr.Filename))
		size, err := g.write(hdr, name)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", hdr.Filename, err)
		}

		infos = append(infos, FileInfo{
			Filename:     name,
			OriginalName: hdr.Filename,
			Size:         size,
			Mimetype:     hdr.Header.Get("Content-Type"),
			URL:          baseURL + "/uploads/" + name,
		})
	}

	return infos, nil
}

// write copies one multipart file to disk and returns the stored size.
func (g *Gateway) write(hdr *multipart.FileHeader, name string) (int64, error) {
	src, err := hdr.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(g.dir, name))
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	return io.Copy(dst, src)
}

// Path resolves a stored file name to its on-disk path. Names are reduced
// to their base component so traversal outside the upload dir is not
// possible.
func (g *Gateway) Path(name string) (string, error) {
	name = filepath.Base(name)
	path := filepath.Join(g.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}
