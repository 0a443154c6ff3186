package web

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the page and its forms. The engine must already use
// the Session middleware and have Templates() installed. limit throttles
// the assistant form.
func RegisterRoutes(r gin.IRoutes, h Handler, limit gin.HandlerFunc) {
	r.GET(pagePath, h.Index)
	r.POST("/todos/submit", h.Submit)
	r.POST("/todos/cancel", h.CancelEdit)
	r.POST("/todos/:index/delete", h.Delete)
	r.POST("/todos/:index/edit", h.BeginEdit)
	r.POST("/assistant", limit, h.Ask)
}
