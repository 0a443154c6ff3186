package web

import (
	"context"
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"itodo/internal/agent/orchestrator"
	"itodo/internal/todo"
	"itodo/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Assistant is the chat loop behind the page's assistant panel.
type Assistant interface {
	ProcessQuery(ctx context.Context, sessionID, query string) (string, error)
	History(sessionID string) []orchestrator.Turn
}

// Config carries the assistant panel copy.
type Config struct {
	AssistantTitle   string
	AssistantInitial string
}

// Handler serves the HTML page and its form posts. Every post redirects
// back to the page.
type Handler interface {
	Index(c *gin.Context)
	Submit(c *gin.Context)
	Delete(c *gin.Context)
	BeginEdit(c *gin.Context)
	CancelEdit(c *gin.Context)
	Ask(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        todo.UseCase
	assistant Assistant
	cfg       Config
}

// New creates the page handler. assistant may be nil.
func New(l log.Logger, uc todo.UseCase, assistant Assistant, cfg Config) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		assistant: assistant,
		cfg:       cfg,
	}
}
