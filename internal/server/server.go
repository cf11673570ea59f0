// Package server assembles the postboard HTTP service: stores, services,
// middleware and routes, plus the net/http server that runs them.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/demo"
	"postboard/internal/posts"
	"postboard/internal/reactions"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg *config.Config

	users  *auth.Store
	tokens *auth.TokenService
	posts  *posts.Repository
	ledger reactions.Ledger
	demo   *demo.Service

	redis *redis.Client
}

// Option customizes a Server
type Option func(*Server)

// WithLedger replaces the reaction ledger chosen from configuration
func WithLedger(l reactions.Ledger) Option {
	return func(s *Server) { s.ledger = l }
}

// WithPasswordCost overrides the bcrypt cost of the credential store
func WithPasswordCost(cost int) Option {
	return func(s *Server) { s.users = auth.NewStore(cost) }
}

// New wires stores and services from cfg. With REACTIONS_BACKEND=redis it
// connects to Redis and fails if the server is unreachable.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		users:  auth.NewStore(bcrypt.DefaultCost),
		tokens: auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL),
		posts:  posts.NewRepository(),
		demo:   demo.NewService(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.ledger == nil {
		ledger, err := s.newLedger(ctx)
		if err != nil {
			return nil, err
		}
		s.ledger = ledger
	}

	if cfg.SeedDemoData {
		if err := s.seed(ctx); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return s, nil
}

func (s *Server) newLedger(ctx context.Context) (reactions.Ledger, error) {
	switch s.cfg.ReactionsBackend {
	case "redis":
		rdb, err := reactions.ConnectRedis(ctx, s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		s.redis = rdb
		slog.Info("Reaction ledger backed by Redis", "addr", s.cfg.RedisAddr, "prefix", s.cfg.RedisKeyPrefix)
		return reactions.NewRedisLedger(rdb, s.cfg.RedisKeyPrefix), nil
	default:
		slog.Info("Reaction ledger kept in memory")
		return reactions.NewMemoryLedger(), nil
	}
}

// seed loads the two sample users and posts
func (s *Server) seed(ctx context.Context) error {
	for i := 1; i <= 2; i++ {
		username := fmt.Sprintf("user%d", i)
		if _, err := s.users.Register(username, fmt.Sprintf("password%d", i)); err != nil {
			return fmt.Errorf("register %s: %w", username, err)
		}
		s.posts.Create(ctx, fmt.Sprintf("Post %d", i), fmt.Sprintf("Content %d", i), nil)
	}
	slog.Info("Seeded demo data", "users", s.users.Count(), "posts", s.posts.Len())
	return nil
}

// HTTPServer returns a configured net/http server for s
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.Port),
		Handler:           s.RegisterRoutes(),
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

// Close releases external connections
func (s *Server) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
