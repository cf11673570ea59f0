// Package auth implements username/password registration and JWT login.
// Passwords are stored as bcrypt hashes; access tokens are stateless HS256 JWTs.
package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// Service defines the authentication service interface
type Service interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	Verify(token string) (*Claims, error)
}

// service implements the Service interface
type service struct {
	store  *Store
	tokens *TokenService
}

// NewService creates a new authentication service
func NewService(store *Store, tokens *TokenService) Service {
	return &service{
		store:  store,
		tokens: tokens,
	}
}

// Register stores a new user
func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	user, err := s.store.Register(username, password)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Registered user", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login checks the credentials and issues an access token
func (s *service) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.store.Authenticate(username, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.DebugContext(ctx, "Issued access token", "user_id", user.ID, "expires_at", expiresAt)
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify validates an access token
func (s *service) Verify(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}
