package reactions

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts like/dislike endpoints; write middleware guards both.
func RegisterRoutes(r gin.IRouter, h *Handler, write ...gin.HandlerFunc) {
	guarded := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), fn)
	}

	r.POST("/posts/:id/like", guarded(h.Like)...)
	r.POST("/posts/:id/like/", guarded(h.Like)...)
	r.POST("/posts/:id/dislike", guarded(h.Dislike)...)
	r.POST("/posts/:id/dislike/", guarded(h.Dislike)...)
	r.GET("/posts/:id/reactions", h.Counts)
}
