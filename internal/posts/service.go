package posts

import (
	"context"
	"fmt"
	"log/slog"
)

// ReactionCounter reports like and dislike totals for a post
type ReactionCounter interface {
	Counts(ctx context.Context, postID int64) (likes, dislikes int64, err error)
}

// Service handles business logic for posts
type Service struct {
	repo    *Repository
	counter ReactionCounter
}

// NewService creates a new posts service. counter may be nil, in which case
// reads report zero reactions.
func NewService(repo *Repository, counter ReactionCounter) *Service {
	return &Service{
		repo:    repo,
		counter: counter,
	}
}

// CreatePost creates a new post
func (s *Service) CreatePost(ctx context.Context, title, content string, userID *int64) Post {
	post := s.repo.Create(ctx, title, content, userID)
	slog.InfoContext(ctx, "Created post", "post_id", post.ID)
	return post
}

// GetPost retrieves a post with its reaction counts
func (s *Service) GetPost(ctx context.Context, postID int64) (*PostWithCounts, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, post)
}

// GetAllPosts retrieves every post with its reaction counts
func (s *Service) GetAllPosts(ctx context.Context) ([]PostWithCounts, error) {
	all := s.repo.GetAll(ctx)

	out := make([]PostWithCounts, 0, len(all))
	for _, p := range all {
		withCounts, err := s.withCounts(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, *withCounts)
	}
	return out, nil
}

// UpdatePost replaces a post's title and content
func (s *Service) UpdatePost(ctx context.Context, postID int64, title, content string, userID *int64) (*Post, error) {
	post, err := s.repo.Update(ctx, postID, title, content, userID)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Updated post", "post_id", post.ID)
	return &post, nil
}

// DeletePost deletes a post and returns the removed record
func (s *Service) DeletePost(ctx context.Context, postID int64) (*Post, error) {
	post, err := s.repo.Delete(ctx, postID)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Deleted post", "post_id", post.ID)
	return &post, nil
}

func (s *Service) withCounts(ctx context.Context, post Post) (*PostWithCounts, error) {
	out := &PostWithCounts{Post: post}
	if s.counter == nil {
		return out, nil
	}

	likes, dislikes, err := s.counter.Counts(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions for post %d: %w", post.ID, err)
	}
	out.LikeCount = likes
	out.DislikeCount = dislikes
	return out, nil
}
