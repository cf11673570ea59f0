package demo

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/custom", h.Custom)
	r.GET("/2.2", h.SampleProfile)
	r.POST("/calculate", h.Calculate)
	r.POST("/calculate/", h.Calculate)
	r.POST("/user", h.CheckAdult)
	r.GET("/users", h.ListUsers)
	r.GET("/users/", h.ListUsers)
	r.GET("/users/:user_id", h.GetUser)
	r.POST("/feedback", h.SubmitFeedback)
}
