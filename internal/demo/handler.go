package demo

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello World"})
}

func (h *Handler) Custom(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "My custom message"})
}

// GET /2.2
func (h *Handler) SampleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SampleProfile())
}

// POST /calculate/?num_1=..&num_2=..
func (h *Handler) Calculate(c *gin.Context) {
	var req SumRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "num_1 and num_2 must be integers"})
		return
	}
	c.JSON(http.StatusOK, SumResponse{Result: h.svc.Sum(*req.Num1, *req.Num2)})
}

// POST /user
func (h *Handler) CheckAdult(c *gin.Context) {
	var req Person
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.CheckAdult(req.Name, *req.Age))
}

// GET /users/:user_id
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "user_id must be an integer"})
		return
	}

	entry, ok := h.svc.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /users/?limit=N
func (h *Handler) ListUsers(c *gin.Context) {
	limit := DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be an integer"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.svc.List(limit))
}

// POST /feedback
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req Feedback
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.svc.SubmitFeedback(req)})
}
