package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"itodo/internal/model"
	"itodo/internal/todo"
	"itodo/internal/todo/repository"
)

// AddTodoItem appends todoText on behalf of the assistant.
func (uc *implUseCase) AddTodoItem(ctx context.Context, sc model.Scope, todoText string) (todo.CommandOutput, error) {
	var out todo.CommandOutput
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		if err := store.Append(todoText); err != nil {
			out = todo.CommandOutput{Message: MsgAddEmpty, Err: err, Todos: store.Todos()}
			return nil
		}
		out = todo.CommandOutput{Message: fmt.Sprintf(MsgAdded, todoText), Todos: store.Todos()}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTodoItem: %v", err)
		return todo.CommandOutput{}, err
	}
	uc.l.Infof(ctx, "uc.AddTodoItem: %s", out.Message)
	return out, nil
}

// DeleteTodoItem removes the todo at the position todoIndex parses to.
func (uc *implUseCase) DeleteTodoItem(ctx context.Context, sc model.Scope, todoIndex string) (todo.CommandOutput, error) {
	var out todo.CommandOutput
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		idx, err := coerceIndex(todoIndex)
		if err == nil {
			err = store.RemoveAt(idx)
		}
		if err != nil {
			out = todo.CommandOutput{
				Message: fmt.Sprintf(MsgNoTodoAtIndex, describeIndex(todoIndex)),
				Err:     err,
				Todos:   store.Todos(),
			}
			return nil
		}
		out = todo.CommandOutput{Message: fmt.Sprintf(MsgDeleted, idx), Todos: store.Todos()}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTodoItem: %v", err)
		return todo.CommandOutput{}, err
	}
	uc.l.Infof(ctx, "uc.DeleteTodoItem: %s", out.Message)
	return out, nil
}

// EditTodoItem replaces the todo at todoIndex with newText. Every check runs
// before the write, so a failure leaves the list untouched. The UI edit
// cursor is deliberately left as is.
func (uc *implUseCase) EditTodoItem(ctx context.Context, sc model.Scope, todoIndex, newText string) (todo.CommandOutput, error) {
	var out todo.CommandOutput
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		idx, err := coerceIndex(todoIndex)
		if err == nil {
			err = store.ReplaceAt(idx, newText)
		}
		switch {
		case errors.Is(err, todo.ErrIndexOutOfRange):
			out = todo.CommandOutput{
				Message: fmt.Sprintf(MsgNoTodoAtIndex, describeIndex(todoIndex)),
				Err:     err,
				Todos:   store.Todos(),
			}
		case errors.Is(err, todo.ErrEmptyText):
			out = todo.CommandOutput{Message: fmt.Sprintf(MsgEditEmpty, idx), Err: err, Todos: store.Todos()}
		case err != nil:
			return err
		default:
			out = todo.CommandOutput{Message: fmt.Sprintf(MsgUpdated, idx, newText), Todos: store.Todos()}
		}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.EditTodoItem: %v", err)
		return todo.CommandOutput{}, err
	}
	uc.l.Infof(ctx, "uc.EditTodoItem: %s", out.Message)
	return out, nil
}

// ListTodoItems narrates the list with the positions the other commands use.
func (uc *implUseCase) ListTodoItems(ctx context.Context, sc model.Scope) (todo.CommandOutput, error) {
	var out todo.CommandOutput
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		out.Todos = store.Todos()
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTodoItems: %v", err)
		return todo.CommandOutput{}, err
	}

	if len(out.Todos) == 0 {
		out.Message = MsgListEmpty
		return out, nil
	}
	lines := make([]string, len(out.Todos))
	for i, t := range out.Todos {
		lines[i] = fmt.Sprintf(MsgListItem, i, t)
	}
	out.Message = strings.Join(lines, "\n")
	return out, nil
}
