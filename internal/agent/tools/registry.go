package tools

import (
	"itodo/internal/agent"
	"itodo/internal/todo"
	pkgLog "itodo/pkg/log"
)

// NewRegistry returns a registry holding every todo tool.
func NewRegistry(uc todo.UseCase, l pkgLog.Logger) *agent.ToolRegistry {
	r := agent.NewToolRegistry()
	r.Register(NewAddTodoItemTool(uc, l))
	r.Register(NewDeleteTodoItemTool(uc, l))
	r.Register(NewEditTodoItemTool(uc, l))
	r.Register(NewListTodoItemsTool(uc, l))
	return r
}
