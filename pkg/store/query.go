package store

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/devstub/devstub/pkg/httputil"
)

// Pagination defaults applied when page or limit is missing or unusable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListParams are the recognized collection query parameters. Search applies
// to users only, UserID to posts only; the others are shared.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	UserID string
}

// ParseListParams extracts list parameters from a query string. Number
// parsing is explicit: non-numeric, missing, or non-positive page/limit
// values fall back to the defaults and never produce an error.
func ParseListParams(q url.Values) ListParams {
	return ListParams{
		Page:   intParam(q.Get("page"), DefaultPage),
		Limit:  intParam(q.Get("limit"), DefaultLimit),
		Search: q.Get("search"),
		UserID: q.Get("userId"),
	}
}

// intParam parses a positive integer, falling back to def otherwise.
func intParam(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// FilterUsers keeps users whose name or email contains the search string,
// case-insensitively. An empty search keeps everything.
func FilterUsers(users []*User, search string) []*User {
	if search == "" {
		return users
	}
	needle := strings.ToLower(search)
	out := make([]*User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name()), needle) ||
			strings.Contains(strings.ToLower(u.Email()), needle) {
			out = append(out, u)
		}
	}
	return out
}

// FilterPosts keeps posts whose userId equals the parsed integer value.
// A missing or non-numeric userId means no filter.
func FilterPosts(posts []*Post, userID string) []*Post {
	id, err := strconv.Atoi(userID)
	if err != nil {
		return posts
	}
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.UserID == id {
			out = append(out, p)
		}
	}
	return out
}

// Paginate slices items on the half-open range [(page-1)*limit,
// (page-1)*limit+limit). Out-of-range indices yield an empty or partial
// page, never an error.
func Paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageMeta computes pagination metadata for a filtered collection of the
// given total size. Zero filtered items means zero total pages.
func PageMeta(total, page, limit int) httputil.Meta {
	return httputil.Meta{
		CurrentPage:  page,
		TotalPages:   (total + limit - 1) / limit,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}
