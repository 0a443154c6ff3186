package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps /assistant. limit throttles the calls that act on the list.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limit gin.HandlerFunc) {
	assistant := rg.Group("/assistant")
	{
		assistant.GET("/actions", h.ListActions)
		assistant.POST("/actions/:name", limit, h.InvokeAction)
		assistant.POST("/chat", limit, h.Chat)
	}
}
