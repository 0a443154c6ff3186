package usecase

import (
	"context"
	"strconv"
	"strings"

	"itodo/internal/model"
	"itodo/internal/todo"
	"itodo/internal/todo/repository"
)

// do runs fn against the scope's ListStore under the session lock.
func (uc *implUseCase) do(ctx context.Context, sc model.Scope, fn func(store repository.ListStore) error) error {
	if sc.SessionID == "" {
		return todo.ErrNoScope
	}
	return uc.repo.Do(ctx, repository.DoOptions{SessionID: sc.SessionID}, fn)
}

func snapshot(store repository.ListStore) todo.State {
	idx, editing := store.Cursor()
	return todo.State{
		Todos:     store.Todos(),
		Editing:   editing,
		EditIndex: idx,
		Input:     store.Input(),
	}
}

// coerceIndex parses an assistant-supplied index. Anything that is not a
// base-10 integer is reported as out of range rather than as a parse error.
func coerceIndex(raw string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, todo.ErrIndexOutOfRange
	}
	return idx, nil
}

// describeIndex renders a raw index for a failure message, quoting values
// that are not integers so that "" and "abc" stay visible.
func describeIndex(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if _, err := strconv.Atoi(trimmed); err == nil {
		return trimmed
	}
	return strconv.Quote(raw)
}
