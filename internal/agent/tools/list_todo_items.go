package tools

import (
	"context"

	"itodo/internal/agent"
	"itodo/internal/todo"
	pkgLog "itodo/pkg/log"
)

type ListTodoItemsTool struct {
	uc todo.UseCase
	l  pkgLog.Logger
}

func NewListTodoItemsTool(uc todo.UseCase, l pkgLog.Logger) *ListTodoItemsTool {
	return &ListTodoItemsTool{uc: uc, l: l}
}

func (t *ListTodoItemsTool) Name() string {
	return "listTodoItems"
}

func (t *ListTodoItemsTool) Description() string {
	return "List the current todo items with their zero-based positions."
}

func (t *ListTodoItemsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ListTodoItemsTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	out, err := t.uc.ListTodoItems(ctx, sc)
	if err != nil {
		return nil, err
	}
	return newActionOutput(out), nil
}

var _ agent.Tool = (*ListTodoItemsTool)(nil)
