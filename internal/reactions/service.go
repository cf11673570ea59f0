// Package reactions records likes and dislikes on posts.
// Both kinds go through one code path: the post must exist, and its author
// may not react to it.
package reactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postboard/internal/posts"
)

var (
	// ErrSelfReaction is returned when a user reacts to their own post
	ErrSelfReaction = errors.New("cannot react to own post")
	// ErrInvalidInput is returned for a non-positive user id
	ErrInvalidInput = errors.New("invalid input")
)

// PostLookup finds posts by id
type PostLookup interface {
	GetByID(ctx context.Context, postID int64) (posts.Post, error)
}

// Service defines the reaction operations
type Service interface {
	Like(ctx context.Context, postID, userID int64) (*Reaction, error)
	Dislike(ctx context.Context, postID, userID int64) (*Reaction, error)
	Counts(ctx context.Context, postID int64) (likes, dislikes int64, err error)
}

type service struct {
	posts  PostLookup
	ledger Ledger
	now    func() time.Time
}

// NewService creates a reaction service over a post lookup and a ledger
func NewService(posts PostLookup, ledger Ledger) Service {
	return &service{
		posts:  posts,
		ledger: ledger,
		now:    time.Now,
	}
}

func (s *service) Like(ctx context.Context, postID, userID int64) (*Reaction, error) {
	return s.react(ctx, KindLike, postID, userID)
}

func (s *service) Dislike(ctx context.Context, postID, userID int64) (*Reaction, error) {
	return s.react(ctx, KindDislike, postID, userID)
}

// Counts returns like and dislike totals; zero for posts nobody reacted to
func (s *service) Counts(ctx context.Context, postID int64) (int64, int64, error) {
	likes, err := s.ledger.Count(ctx, postID, KindLike)
	if err != nil {
		return 0, 0, err
	}
	dislikes, err := s.ledger.Count(ctx, postID, KindDislike)
	if err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

func (s *service) react(ctx context.Context, kind Kind, postID, userID int64) (*Reaction, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != nil && *post.UserID == userID {
		return nil, ErrSelfReaction
	}

	r := Reaction{
		UserID:    userID,
		PostID:    postID,
		Kind:      kind,
		CreatedAt: s.now().UTC(),
	}
	if err := s.ledger.Append(ctx, r); err != nil {
		return nil, fmt.Errorf("record %s on post %d: %w", kind, postID, err)
	}
	return &r, nil
}
