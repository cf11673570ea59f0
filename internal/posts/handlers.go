package posts

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"postboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for posts
type Handler struct {
	service *Service
}

// NewHandler creates a new posts handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreatePost handles POST /posts/
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body: " + err.Error()})
		return
	}

	author, err := auth.ActingUserID(c, req.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, ErrorResponse{Detail: "Cannot act on behalf of another user"})
		return
	}

	post := h.service.CreatePost(c.Request.Context(), req.Title, req.Content, author)
	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /posts/:id
func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), postID)
	if err != nil {
		h.writeError(c, err, "Failed to retrieve post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetAllPosts handles GET /posts/
func (h *Handler) GetAllPosts(c *gin.Context) {
	posts, err := h.service.GetAllPosts(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to retrieve posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles PUT /posts/:id
func (h *Handler) UpdatePost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body: " + err.Error()})
		return
	}

	// The author only changes when the body names one.
	author := req.UserID
	if author != nil {
		var err error
		if author, err = auth.ActingUserID(c, author); err != nil {
			c.JSON(http.StatusForbidden, ErrorResponse{Detail: "Cannot act on behalf of another user"})
			return
		}
	}

	post, err := h.service.UpdatePost(c.Request.Context(), postID, req.Title, req.Content, author)
	if err != nil {
		h.writeError(c, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /posts/:id
func (h *Handler) DeletePost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.service.DeletePost(c.Request.Context(), postID)
	if err != nil {
		h.writeError(c, err, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrPostNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Post not found"})
		return
	}
	slog.ErrorContext(c.Request.Context(), fallback, "error", err, "request_id", c.GetString("request_id"))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: fallback})
}

func parsePostID(c *gin.Context) (int64, bool) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid post ID"})
		return 0, false
	}
	return postID, true
}
