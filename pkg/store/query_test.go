package store

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 10},
		{name: "explicit", query: "page=3&limit=5", wantPage: 3, wantLimit: 5},
		{name: "non-numeric falls back", query: "page=abc&limit=xyz", wantPage: 1, wantLimit: 10},
		{name: "zero falls back", query: "page=0&limit=0", wantPage: 1, wantLimit: 10},
		{name: "negative falls back", query: "page=-2&limit=-1", wantPage: 1, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			params := ParseListParams(q)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestFilterUsers(t *testing.T) {
	users := New(DefaultSeed()).ListUsers()

	t.Run("empty search keeps everything", func(t *testing.T) {
		assert.Len(t, FilterUsers(users, ""), 2)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := FilterUsers(users, "LEANNE")
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("matches email substring", func(t *testing.T) {
		got := FilterUsers(users, "melissa.tv")
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterUsers(users, "zzz"))
	})
}

func TestFilterPosts(t *testing.T) {
	posts := New(DefaultSeed()).ListPosts()

	t.Run("by owner", func(t *testing.T) {
		assert.Len(t, FilterPosts(posts, "1"), 2)
		assert.Len(t, FilterPosts(posts, "2"), 1)
		assert.Empty(t, FilterPosts(posts, "42"))
	})

	t.Run("non-numeric means no filter", func(t *testing.T) {
		assert.Len(t, FilterPosts(posts, ""), 3)
		assert.Len(t, FilterPosts(posts, "abc"), 3)
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
	}{
		{name: "first page", page: 1, limit: 3, want: []int{1, 2, 3}},
		{name: "middle page", page: 2, limit: 3, want: []int{4, 5, 6}},
		{name: "partial last page", page: 3, limit: 3, want: []int{7}},
		{name: "past the end", page: 4, limit: 3, want: []int{}},
		{name: "limit larger than slice", page: 1, limit: 100, want: []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageMeta(t *testing.T) {
	meta := PageMeta(7, 2, 3)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 7, meta.TotalItems)
	assert.Equal(t, 3, meta.ItemsPerPage)

	// Empty collection has zero pages.
	assert.Equal(t, 0, PageMeta(0, 1, 10).TotalPages)
}
