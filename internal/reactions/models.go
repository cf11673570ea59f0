package reactions

import "time"

// Kind distinguishes likes from dislikes
type Kind string

const (
	KindLike    Kind = "like"
	KindDislike Kind = "dislike"
)

// Reaction is one like or dislike event. PostID always comes from the URL.
type Reaction struct {
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionRequest is the body of like and dislike requests. A post_id in the
// body is ignored. Without user_id the authenticated caller is used.
type ReactionRequest struct {
	UserID *int64 `json:"user_id" binding:"omitempty,min=1"`
}

// CountsResponse reports reaction totals for a post
type CountsResponse struct {
	PostID       int64 `json:"post_id"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
