// Post CRUD handlers, including the explicit partial-update (PATCH)
// variant.

package server

import (
	"errors"
	"net/http"

	"github.com/devstub/devstub/pkg/httputil"
	"github.com/devstub/devstub/pkg/store"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	params := store.ParseListParams(r.URL.Query())

	filtered := store.FilterPosts(s.store.ListPosts(), params.UserID)
	page := store.Paginate(filtered, params.Page, params.Limit)

	httputil.WriteList(w, postsJSON(page), "Posts retrieved successfully",
		store.PageMeta(len(filtered), params.Page, params.Limit))
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "Post")
	if !ok {
		return
	}

	post, err := s.store.GetPost(id)
	if err != nil {
		writeTypedError(w, err, "Post not found")
		return
	}

	httputil.WriteOK(w, post.ToJSON(), "Post retrieved successfully")
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	title, _ := fields["title"].(string)
	body, _ := fields["body"].(string)
	if title == "" || body == "" || fields["userId"] == nil {
		httputil.WriteError(w, http.StatusBadRequest, "Validation failed",
			"Title, body, and userId are required")
		return
	}

	post, err := s.store.CreatePost(fields)
	if err != nil {
		var ref *store.InvalidReferenceError
		if errors.As(err, &ref) {
			httputil.WriteError(w, http.StatusBadRequest, "Invalid user", ref.Error())
			return
		}
		writeTypedError(w, err, "Failed to create post")
		return
	}

	httputil.WriteCreated(w, post.ToJSON(), "Post created successfully")
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "Post")
	if !ok {
		return
	}

	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	if _, err := s.store.GetPost(id); err != nil {
		writeTypedError(w, err, "Post not found")
		return
	}

	title, _ := fields["title"].(string)
	body, _ := fields["body"].(string)
	if title == "" || body == "" {
		httputil.WriteError(w, http.StatusBadRequest, "Validation failed",
			"Title and body are required")
		return
	}

	// Full update only touches title and body; other fields keep their
	// prior values.
	post, err := s.store.UpdatePost(id, map[string]any{"title": title, "body": body})
	if err != nil {
		writeTypedError(w, err, "Post not found")
		return
	}

	httputil.WriteOK(w, post.ToJSON(), "Post updated successfully")
}

func (s *Server) handlePatchPost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "Post")
	if !ok {
		return
	}

	fields, err := decodeBody(r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	// Patch accepts any subset of fields and validates nothing.
	post, err := s.store.PatchPost(id, fields)
	if err != nil {
		writeTypedError(w, err, "Post not found")
		return
	}

	httputil.WriteOK(w, post.ToJSON(), "Post updated successfully")
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "Post")
	if !ok {
		return
	}

	post, err := s.store.DeletePost(id)
	if err != nil {
		writeTypedError(w, err, "Post not found")
		return
	}

	httputil.WriteOK(w, post.ToJSON(), "Post deleted successfully")
}
