package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"itodo/internal/agent"
	"itodo/internal/agent/orchestrator"
	"itodo/pkg/log"
)

// Assistant is the chat loop. *orchestrator.Orchestrator satisfies it.
type Assistant interface {
	ProcessQuery(ctx context.Context, sessionID, query string) (string, error)
	History(sessionID string) []orchestrator.Turn
}

// Handler exposes the operation registry and the chat loop.
type Handler interface {
	ListActions(c *gin.Context)
	InvokeAction(c *gin.Context)
	Chat(c *gin.Context)
}

type handler struct {
	l         log.Logger
	registry  *agent.ToolRegistry
	assistant Assistant
}

// New creates the assistant handler. assistant may be nil when no LLM
// provider is configured; Chat then answers 503.
func New(l log.Logger, registry *agent.ToolRegistry, assistant Assistant) Handler {
	return &handler{
		l:         l,
		registry:  registry,
		assistant: assistant,
	}
}
