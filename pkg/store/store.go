package store

import (
	"sync"
	"time"
)

// Store is the authoritative in-memory holder of the user and post
// collections. All operations are atomic under a single writer lock, so
// invariants (email uniqueness, cascade delete) hold under concurrent
// request handling. Ids are monotonic and never reused, even after delete.
type Store struct {
	mu         sync.RWMutex
	users      []*User
	posts      []*Post
	nextUserID int
	nextPostID int
	seed       Seed
}

// New creates a Store populated from the given seed data. Id counters
// start one past the highest seeded id.
func New(seed Seed) *Store {
	s := &Store{seed: seed}
	s.load()
	return s
}

// load populates the collections from seed data and derives the counters.
// Callers must hold the write lock (or own the store exclusively).
func (s *Store) load() {
	now := time.Now()
	s.users = make([]*User, 0, len(s.seed.Users))
	s.posts = make([]*Post, 0, len(s.seed.Posts))
	s.nextUserID = 1
	s.nextPostID = 1

	for _, fields := range s.seed.Users {
		id, _ := intField(fields, "id")
		if id >= s.nextUserID {
			s.nextUserID = id + 1
		}
		s.users = append(s.users, &User{
			ID:        id,
			Data:      cloneFields(fields),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, fields := range s.seed.Posts {
		id, _ := intField(fields, "id")
		userID, _ := intField(fields, "userId")
		if id >= s.nextPostID {
			s.nextPostID = id + 1
		}
		s.posts = append(s.posts, &Post{
			ID:        id,
			UserID:    userID,
			Data:      cloneFields(fields, "userId"),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
}

// Reset restores the store to its seed state. Test support only; the
// running server never calls this on its own.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*User, len(s.users))
	copy(out, s.users)
	return out
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(id); i >= 0 {
		return s.users[i], nil
	}
	return nil, &NotFoundError{Resource: "User", ID: id}
}

// CreateUser assigns the next id, merges the supplied fields, stamps
// timestamps and appends the user. Fails if the email is already taken.
func (s *Store) CreateUser(fields map[string]any) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := stringField(fields, "email")
	if s.emailTaken(email, 0) {
		return nil, &DuplicateEmailError{Email: email}
	}

	now := time.Now()
	user := &User{
		ID:        s.nextUserID,
		Data:      cloneFields(fields),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

// UpdateUser shallow-merges the supplied fields over the existing user
// (supplied fields win) and refreshes updatedAt. Fails if the id is absent
// or the new email collides with a different user.
func (s *Store) UpdateUser(id int, fields map[string]any) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: "User", ID: id}
	}

	if email := stringField(fields, "email"); email != "" && s.emailTaken(email, id) {
		return nil, &DuplicateEmailError{Email: email}
	}

	prev := s.users[i]
	merged := cloneFields(prev.Data)
	for k, v := range cloneFields(fields) {
		merged[k] = v
	}

	updated := &User{
		ID:        prev.ID,
		Data:      merged,
		CreatedAt: prev.CreatedAt,
		UpdatedAt: time.Now(),
	}
	s.users[i] = updated
	return updated, nil
}

// DeleteUser removes the user and every post whose userId matches, as one
// atomic step. Returns the removed user.
func (s *Store) DeleteUser(id int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: "User", ID: id}
	}

	removed := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)

	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.UserID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept

	return removed, nil
}

// ListPosts returns all posts in insertion order.
func (s *Store) ListPosts() []*Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// GetPost returns the post with the given id.
func (s *Store) GetPost(id int) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.postIndex(id); i >= 0 {
		return s.posts[i], nil
	}
	return nil, &NotFoundError{Resource: "Post", ID: id}
}

// CreatePost validates that userId references an existing user, assigns
// the next id, stamps timestamps and appends the post.
func (s *Store) CreatePost(fields map[string]any) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, _ := intField(fields, "userId")
	if s.userIndex(userID) < 0 {
		return nil, &InvalidReferenceError{UserID: userID}
	}

	now := time.Now()
	post := &Post{
		ID:        s.nextPostID,
		UserID:    userID,
		Data:      cloneFields(fields, "userId"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextPostID++
	s.posts = append(s.posts, post)
	return post, nil
}

// UpdatePost shallow-merges the supplied fields over the existing post and
// refreshes updatedAt. Required-field checks are the handler's concern.
func (s *Store) UpdatePost(id int, fields map[string]any) (*Post, error) {
	return s.mergePost(id, fields)
}

// PatchPost applies the same merge as UpdatePost. It exists as the
// explicit partial-update variant: callers perform no required-field
// validation before a patch.
func (s *Store) PatchPost(id int, fields map[string]any) (*Post, error) {
	return s.mergePost(id, fields)
}

func (s *Store) mergePost(id int, fields map[string]any) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: "Post", ID: id}
	}

	prev := s.posts[i]
	merged := cloneFields(prev.Data)
	for k, v := range cloneFields(fields, "userId") {
		merged[k] = v
	}

	userID := prev.UserID
	if v, ok := intField(fields, "userId"); ok {
		userID = v
	}

	updated := &Post{
		ID:        prev.ID,
		UserID:    userID,
		Data:      merged,
		CreatedAt: prev.CreatedAt,
		UpdatedAt: time.Now(),
	}
	s.posts[i] = updated
	return updated, nil
}

// DeletePost removes and returns the post.
func (s *Store) DeletePost(id int) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: "Post", ID: id}
	}

	removed := s.posts[i]
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return removed, nil
}

// FindUserByEmail returns the user with the given email, or nil.
// Matching is exact, like the duplicate-email check.
func (s *Store) FindUserByEmail(email string) *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email() == email {
			return u
		}
	}
	return nil
}

// UserCount returns the number of users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// PostCount returns the number of posts.
func (s *Store) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// userIndex returns the slice index of the user with the given id, or -1.
// Callers must hold at least the read lock.
func (s *Store) userIndex(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// postIndex returns the slice index of the post with the given id, or -1.
func (s *Store) postIndex(id int) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether any user other than excludeID has the email.
// An empty email is never considered taken.
func (s *Store) emailTaken(email string, excludeID int) bool {
	if email == "" {
		return false
	}
	for _, u := range s.users {
		if u.ID != excludeID && u.Email() == email {
			return true
		}
	}
	return false
}
