package posts

// Post is a stored post. UserID is the optional author, used to stop authors
// reacting to their own posts.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  *int64 `json:"user_id,omitempty"`
}

// PostWithCounts is a post as returned by reads, with its reaction totals
type PostWithCounts struct {
	Post
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

// PostRequest is the body of create and update requests.
// Any "id" field in the body is ignored; ids are assigned by the store.
type PostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"max=10000"`
	UserID  *int64 `json:"user_id" binding:"omitempty,min=1"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
