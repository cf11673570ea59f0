package posts

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

// Repository is the in-memory post store. Posts are kept in creation order;
// a new post gets the largest existing id plus one, or 1 when the store is empty.
type Repository struct {
	mu    sync.RWMutex
	posts []Post
}

// NewRepository creates an empty post store
func NewRepository() *Repository {
	return &Repository{}
}

// Create stores a new post and returns it with its assigned id
func (r *Repository) Create(ctx context.Context, title, content string, userID *int64) Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, p := range r.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	post := Post{
		ID:      maxID + 1,
		Title:   title,
		Content: content,
		UserID:  cloneID(userID),
	}
	r.posts = append(r.posts, post)

	return clonePost(post)
}

// GetByID retrieves a single post by ID
func (r *Repository) GetByID(ctx context.Context, postID int64) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(postID)
	if i < 0 {
		return Post{}, ErrPostNotFound
	}
	return clonePost(r.posts[i]), nil
}

// Update replaces title and content of a post. The id is never changed; the
// author is replaced only when userID is non-nil.
func (r *Repository) Update(ctx context.Context, postID int64, title, content string, userID *int64) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(postID)
	if i < 0 {
		return Post{}, ErrPostNotFound
	}

	p := &r.posts[i]
	p.Title = title
	p.Content = content
	if userID != nil {
		p.UserID = cloneID(userID)
	}

	return clonePost(*p), nil
}

// Delete removes a post and returns it
func (r *Repository) Delete(ctx context.Context, postID int64) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(postID)
	if i < 0 {
		return Post{}, ErrPostNotFound
	}

	removed := r.posts[i]
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	return removed, nil
}

// GetAll returns every post in creation order
func (r *Repository) GetAll(ctx context.Context) []Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out
}

// Len returns the number of stored posts
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

// indexOf must be called with r.mu held.
func (r *Repository) indexOf(postID int64) int {
	for i, p := range r.posts {
		if p.ID == postID {
			return i
		}
	}
	return -1
}

func clonePost(p Post) Post {
	p.UserID = cloneID(p.UserID)
	return p
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
