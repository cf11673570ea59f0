package reactions

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"postboard/internal/auth"
	"postboard/internal/posts"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler { return &Handler{svc: svc} }

// POST /posts/:id/like/  {user_id}
func (h *Handler) Like(c *gin.Context) { h.react(c, KindLike) }

// POST /posts/:id/dislike/  {user_id}
func (h *Handler) Dislike(c *gin.Context) { h.react(c, KindDislike) }

// GET /posts/:id/reactions
func (h *Handler) Counts(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid post ID"})
		return
	}
	likes, dislikes, err := h.svc.Counts(c.Request.Context(), postID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to count reactions", "post_id", postID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to count reactions"})
		return
	}
	c.JSON(http.StatusOK, CountsResponse{PostID: postID, LikeCount: likes, DislikeCount: dislikes})
}

func (h *Handler) react(c *gin.Context, kind Kind) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid post ID"})
		return
	}

	// The body is optional: a bearer token alone identifies the user.
	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body: " + err.Error()})
		return
	}

	acting, err := auth.ActingUserID(c, req.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, ErrorResponse{Detail: "Cannot act on behalf of another user"})
		return
	}
	if acting == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "user_id is required"})
		return
	}
	userID := *acting

	var r *Reaction
	if kind == KindLike {
		r, err = h.svc.Like(c.Request.Context(), postID, userID)
	} else {
		r, err = h.svc.Dislike(c.Request.Context(), postID, userID)
	}
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrPostNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Post not found"})
		case errors.Is(err, ErrSelfReaction):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "You cannot " + string(kind) + " your own post"})
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid user_id"})
		default:
			slog.ErrorContext(c.Request.Context(), "Failed to record reaction",
				"kind", kind, "post_id", postID, "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to " + string(kind) + " post"})
		}
		return
	}

	c.JSON(http.StatusOK, r)
}
