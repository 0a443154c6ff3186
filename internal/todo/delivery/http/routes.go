package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps /todos. The group must already run the Session middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.Detail)
		todos.POST("", h.Add)
		todos.PUT("/input", h.SetInput)
		todos.POST("/edit/commit", h.CommitEdit)
		todos.POST("/edit/cancel", h.CancelEdit)
		todos.DELETE("/:index", h.Delete)
		todos.POST("/:index/edit", h.BeginEdit)
	}
}
