package orchestrator

import (
	"context"
	"time"

	"itodo/internal/model"
	"itodo/internal/todo"
	"itodo/pkg/llmprovider"
)

// LLM generates the next assistant message. *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ListReader exposes the session's list to the model as context.
// todo.UseCase satisfies it.
type ListReader interface {
	Detail(ctx context.Context, sc model.Scope) (todo.State, error)
}

// Config tunes the ReAct loop.
type Config struct {
	Instructions string
	MaxSteps     int
	HistoryTTL   time.Duration
}

// Turn is one visible line of a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SessionMemory holds the recent conversation history for a session. Only
// user queries and final answers are kept; tool traffic stays in the loop.
type SessionMemory struct {
	SessionID   string
	Messages    []llmprovider.Message
	LastUpdated time.Time
}
