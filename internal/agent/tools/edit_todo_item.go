package tools

import (
	"context"

	"itodo/internal/agent"
	"itodo/internal/todo"
	pkgLog "itodo/pkg/log"
)

type EditTodoItemTool struct {
	uc todo.UseCase
	l  pkgLog.Logger
}

func NewEditTodoItemTool(uc todo.UseCase, l pkgLog.Logger) *EditTodoItemTool {
	return &EditTodoItemTool{uc: uc, l: l}
}

func (t *EditTodoItemTool) Name() string {
	return "editTodoItem"
}

func (t *EditTodoItemTool) Description() string {
	return "Replace the text of the todo item at the given zero-based position."
}

func (t *EditTodoItemTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"todoIndex": stringProperty("Zero-based index of the todo item to edit, as a number string"),
			"newText":   stringProperty("New text for the todo item"),
		},
		"required": []string{"todoIndex", "newText"},
	}
}

type EditTodoItemInput struct {
	TodoIndex argString `json:"todoIndex"`
	NewText   argString `json:"newText"`
}

func (t *EditTodoItemTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params EditTodoItemInput
	if err := parseParams(input, &params); err != nil {
		return nil, err
	}

	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	t.l.Debugf(ctx, "editTodoItem: todoIndex=%q newText=%q", params.TodoIndex, params.NewText)

	out, err := t.uc.EditTodoItem(ctx, sc, string(params.TodoIndex), string(params.NewText))
	if err != nil {
		return nil, err
	}
	return newActionOutput(out), nil
}

var _ agent.Tool = (*EditTodoItemTool)(nil)
