package server

import (
	"context"
	"net/http"

	"postboard/internal/auth"
	"postboard/internal/demo"
	"postboard/internal/posts"
	"postboard/internal/reactions"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// healthChecker is implemented by ledgers with an external backend
type healthChecker interface {
	Health(ctx context.Context) error
}

func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)

	authService := auth.NewService(s.users, s.tokens)
	authHandler := auth.NewHandler(authService)
	r.POST("/register", authHandler.Register)
	r.POST("/register/", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/login/", authHandler.Login)

	var write []gin.HandlerFunc
	if s.cfg.RequireAuth {
		write = append(write, auth.BearerAuth(s.tokens))
	}

	reactionService := reactions.NewService(s.posts, s.ledger)
	posts.RegisterRoutes(r, posts.NewHandler(posts.NewService(s.posts, reactionService)), write...)
	reactions.RegisterRoutes(r, reactions.NewHandler(reactionService), write...)

	demo.RegisterRoutes(r, demo.NewHandler(s.demo))

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	response := gin.H{
		"status": "up",
		"users":  s.users.Count(),
		"posts":  s.posts.Len(),
	}

	if checker, ok := s.ledger.(healthChecker); ok {
		ledgerHealth := gin.H{"status": "up"}
		if err := checker.Health(c.Request.Context()); err != nil {
			ledgerHealth["status"] = "down"
			ledgerHealth["error"] = err.Error()
			response["status"] = "degraded"
		}
		response["reactions"] = ledgerHealth
	}

	c.JSON(http.StatusOK, response)
}
