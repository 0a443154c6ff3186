package usecase

import (
	"context"
	"errors"
	"fmt"

	"itodo/internal/model"
	"itodo/internal/todo"
	"itodo/internal/todo/repository"
)

// Detail returns the current state of the session's list.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (todo.State, error) {
	var state todo.State
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		state = snapshot(store)
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail: %v", err)
		return todo.State{}, err
	}
	return state, nil
}

// Add appends input.Text. An empty submission is a silent no-op.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input todo.AddInput) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		out = uc.add(store, input.Text)
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add: %v", err)
		return todo.Output{}, err
	}
	return out, nil
}

func (uc *implUseCase) add(store repository.ListStore, text string) todo.Output {
	if err := store.Append(text); err != nil {
		return todo.Output{State: snapshot(store)}
	}
	store.SetInput("")
	return todo.Output{
		State:   snapshot(store),
		Applied: true,
		Message: fmt.Sprintf(MsgAdded, text),
	}
}

// Delete removes the todo at input.Index. A stale index yields ErrIndexOutOfRange.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input todo.DeleteInput) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		if err := store.RemoveAt(input.Index); err != nil {
			return err
		}
		out = todo.Output{
			State:   snapshot(store),
			Applied: true,
			Message: fmt.Sprintf(MsgDeleted, input.Index),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, todo.ErrIndexOutOfRange) {
			uc.l.Errorf(ctx, "uc.Delete: %v", err)
		}
		return todo.Output{}, err
	}
	return out, nil
}

// BeginEdit points the edit cursor at input.Index and loads its text into
// the pending input. Starting a new edit abandons the previous one.
func (uc *implUseCase) BeginEdit(ctx context.Context, sc model.Scope, input todo.BeginEditInput) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		text, err := store.BeginEdit(input.Index)
		if err != nil {
			return err
		}
		store.SetInput(text)
		out = todo.Output{
			State:   snapshot(store),
			Applied: true,
			Message: fmt.Sprintf(MsgEditing, input.Index),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, todo.ErrIndexOutOfRange) {
			uc.l.Errorf(ctx, "uc.BeginEdit: %v", err)
		}
		return todo.Output{}, err
	}
	return out, nil
}

// CommitEdit replaces the todo under the cursor with input.Text, then clears
// the cursor and the pending input. Without a cursor, or with empty text, it
// is a silent no-op.
func (uc *implUseCase) CommitEdit(ctx context.Context, sc model.Scope, input todo.CommitEditInput) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		out = uc.commitEdit(store, input.Text)
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CommitEdit: %v", err)
		return todo.Output{}, err
	}
	return out, nil
}

func (uc *implUseCase) commitEdit(store repository.ListStore, text string) todo.Output {
	idx, editing := store.Cursor()
	if !editing {
		return todo.Output{State: snapshot(store)}
	}
	if err := store.ReplaceAt(idx, text); err != nil {
		return todo.Output{State: snapshot(store)}
	}
	store.CancelEdit()
	store.SetInput("")
	return todo.Output{
		State:   snapshot(store),
		Applied: true,
		Message: fmt.Sprintf(MsgUpdated, idx, text),
	}
}

// CancelEdit clears the cursor and the pending input.
func (uc *implUseCase) CancelEdit(ctx context.Context, sc model.Scope) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		_, editing := store.Cursor()
		store.CancelEdit()
		store.SetInput("")
		out = todo.Output{State: snapshot(store), Applied: editing}
		if editing {
			out.Message = MsgEditCancelled
		}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CancelEdit: %v", err)
		return todo.Output{}, err
	}
	return out, nil
}

// Submit backs the primary button: it commits the active edit when there is
// one and adds a new todo otherwise.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input todo.SubmitInput) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		if _, editing := store.Cursor(); editing {
			out = uc.commitEdit(store, input.Text)
		} else {
			out = uc.add(store, input.Text)
		}
		if !out.Applied {
			store.SetInput(input.Text)
			out.State.Input = input.Text
		}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit: %v", err)
		return todo.Output{}, err
	}
	return out, nil
}

// SetInput stages text in the pending input buffer.
func (uc *implUseCase) SetInput(ctx context.Context, sc model.Scope, input todo.SetInputInput) (todo.Output, error) {
	var out todo.Output
	err := uc.do(ctx, sc, func(store repository.ListStore) error {
		store.SetInput(input.Text)
		out = todo.Output{State: snapshot(store), Applied: true}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetInput: %v", err)
		return todo.Output{}, err
	}
	return out, nil
}
