package http

import (
	"github.com/gin-gonic/gin"

	"itodo/internal/todo"
	"itodo/pkg/log"
)

// Handler is the JSON API over a session's todo list.
type Handler interface {
	Detail(c *gin.Context)
	Add(c *gin.Context)
	SetInput(c *gin.Context)
	Delete(c *gin.Context)
	BeginEdit(c *gin.Context)
	CommitEdit(c *gin.Context)
	CancelEdit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
