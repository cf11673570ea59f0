package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles authentication-related HTTP requests
type Handler struct {
	service Service
}

// NewHandler creates a new authentication handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /register
func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request: " + err.Error()})
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "User already exists"})
			return
		case errors.Is(err, ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Password must be at most 72 bytes"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to register user", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /login
func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Invalid credentials"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to log in", "username", req.Username, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
