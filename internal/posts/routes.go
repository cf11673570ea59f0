package posts

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the post endpoints on r. The write middleware (usually
// bearer authentication) runs in front of create, update and delete.
func RegisterRoutes(r gin.IRouter, h *Handler, write ...gin.HandlerFunc) {
	guarded := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), fn)
	}

	postsGroup := r.Group("/posts")
	{
		postsGroup.GET("", h.GetAllPosts)
		postsGroup.GET("/", h.GetAllPosts)
		postsGroup.POST("", guarded(h.CreatePost)...)
		postsGroup.POST("/", guarded(h.CreatePost)...)
		postsGroup.GET("/:id", h.GetPost)
		postsGroup.PUT("/:id", guarded(h.UpdatePost)...)
		postsGroup.DELETE("/:id", guarded(h.DeletePost)...)
	}
}
