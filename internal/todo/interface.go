package todo

import (
	"context"

	"itodo/internal/model"
)

// UseCase is the single mutation boundary over a session's todo list. The
// direct UI methods take typed input and stay silent on empty submissions;
// the assistant methods take string arguments and always narrate.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Direct UI
	Detail(ctx context.Context, sc model.Scope) (State, error)
	Add(ctx context.Context, sc model.Scope, input AddInput) (Output, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) (Output, error)
	BeginEdit(ctx context.Context, sc model.Scope, input BeginEditInput) (Output, error)
	CommitEdit(ctx context.Context, sc model.Scope, input CommitEditInput) (Output, error)
	CancelEdit(ctx context.Context, sc model.Scope) (Output, error)
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (Output, error)
	SetInput(ctx context.Context, sc model.Scope, input SetInputInput) (Output, error)

	// Assistant
	AddTodoItem(ctx context.Context, sc model.Scope, todoText string) (CommandOutput, error)
	DeleteTodoItem(ctx context.Context, sc model.Scope, todoIndex string) (CommandOutput, error)
	EditTodoItem(ctx context.Context, sc model.Scope, todoIndex, newText string) (CommandOutput, error)
	ListTodoItems(ctx context.Context, sc model.Scope) (CommandOutput, error)
}
