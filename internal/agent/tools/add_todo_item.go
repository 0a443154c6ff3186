package tools

import (
	"context"

	"itodo/internal/agent"
	"itodo/internal/todo"
	pkgLog "itodo/pkg/log"
)

type AddTodoItemTool struct {
	uc todo.UseCase
	l  pkgLog.Logger
}

func NewAddTodoItemTool(uc todo.UseCase, l pkgLog.Logger) *AddTodoItemTool {
	return &AddTodoItemTool{uc: uc, l: l}
}

func (t *AddTodoItemTool) Name() string {
	return "addTodoItem"
}

func (t *AddTodoItemTool) Description() string {
	return "Add a new todo item to the end of the user's todo list."
}

func (t *AddTodoItemTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"todoText": stringProperty("Text of the todo item to add"),
		},
		"required": []string{"todoText"},
	}
}

type AddTodoItemInput struct {
	TodoText argString `json:"todoText"`
}

func (t *AddTodoItemTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params AddTodoItemInput
	if err := parseParams(input, &params); err != nil {
		return nil, err
	}

	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}

	t.l.Debugf(ctx, "addTodoItem: todoText=%q", params.TodoText)

	out, err := t.uc.AddTodoItem(ctx, sc, string(params.TodoText))
	if err != nil {
		return nil, err
	}
	return newActionOutput(out), nil
}

var _ agent.Tool = (*AddTodoItemTool)(nil)
