package tools

import (
	"context"

	"itodo/internal/agent"
	"itodo/internal/todo"
	pkgLog "itodo/pkg/log"
)

type DeleteTodoItemTool struct {
	uc todo.UseCase
	l  pkgLog.Logger
}

func NewDeleteTodoItemTool(uc todo.UseCase, l pkgLog.Logger) *DeleteTodoItemTool {
	return &DeleteTodoItemTool{uc: uc, l: l}
}

func (t *DeleteTodoItemTool) Name() string {
	return "deleteTodoItem"
}

func (t *DeleteTodoItemTool) Description() string {
	return "Delete the todo item at the given zero-based position. Use listTodoItems first if you only know the text."
}

func (t *DeleteTodoItemTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"todoIndex": stringProperty("Zero-based index of the todo item to delete, as a number string"),
		},
		"required": []string{"todoIndex"},
	}
}

type DeleteTodoItemInput struct {
	TodoIndex argString `json:"todoIndex"`
}

func (t *DeleteTodoItemTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params DeleteTodoItemInput
	if err := parseParams(input, &params); err != nil {
		return nil, err
	}

	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	t.l.Debugf(ctx, "deleteTodoItem: todoIndex=%q", params.TodoIndex)

	out, err := t.uc.DeleteTodoItem(ctx, sc, string(params.TodoIndex))
	if err != nil {
		return nil, err
	}
	return newActionOutput(out), nil
}

var _ agent.Tool = (*DeleteTodoItemTool)(nil)
