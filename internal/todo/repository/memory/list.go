package memory

import (
	"strings"

	"itodo/internal/todo"
	"itodo/internal/todo/repository"
)

const noCursor = -1

type listStore struct {
	todos  []string
	cursor int
	input  string
}

// NewListStore returns an empty ListStore in the Idle state.
func NewListStore() repository.ListStore {
	return &listStore{cursor: noCursor}
}

func (s *listStore) validIndex(index int) bool {
	return index >= 0 && index < len(s.todos)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func (s *listStore) Append(text string) error {
	if isBlank(text) {
		return todo.ErrEmptyText
	}
	s.todos = append(s.todos, text)
	return nil
}

func (s *listStore) RemoveAt(index int) error {
	if !s.validIndex(index) {
		return todo.ErrIndexOutOfRange
	}
	s.todos = append(s.todos[:index], s.todos[index+1:]...)

	switch {
	case s.cursor == index:
		s.cursor = noCursor
	case s.cursor > index:
		s.cursor--
	}
	return nil
}

func (s *listStore) ReplaceAt(index int, text string) error {
	if !s.validIndex(index) {
		return todo.ErrIndexOutOfRange
	}
	if isBlank(text) {
		return todo.ErrEmptyText
	}
	s.todos[index] = text
	return nil
}

func (s *listStore) BeginEdit(index int) (string, error) {
	if !s.validIndex(index) {
		return "", todo.ErrIndexOutOfRange
	}
	s.cursor = index
	return s.todos[index], nil
}

func (s *listStore) CancelEdit() {
	s.cursor = noCursor
}

// Todos returns a copy; callers may keep it past the session lock.
func (s *listStore) Todos() []string {
	out := make([]string, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *listStore) Len() int {
	return len(s.todos)
}

func (s *listStore) Cursor() (int, bool) {
	if s.cursor == noCursor {
		return 0, false
	}
	return s.cursor, true
}

func (s *listStore) Input() string {
	return s.input
}

func (s *listStore) SetInput(text string) {
	s.input = text
}
