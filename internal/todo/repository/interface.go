package repository

import "context"

// ListStore owns one session's ordered todos, edit cursor and pending input.
// Every operation is total: invalid input leaves the store unchanged and
// returns todo.ErrEmptyText or todo.ErrIndexOutOfRange. Implementations are
// not safe for concurrent use; SessionRepository.Do serializes access.
type ListStore interface {
	Append(text string) error
	RemoveAt(index int) error
	ReplaceAt(index int, text string) error
	BeginEdit(index int) (string, error)
	CancelEdit()

	Todos() []string
	Len() int
	Cursor() (int, bool)
	Input() string
	SetInput(text string)
}

// SessionRepository hands out the ListStore of a session.
type SessionRepository interface {
	// Do runs fn with exclusive access to the session's store, creating an
	// empty one on first use. fn's error is returned unchanged.
	Do(ctx context.Context, opt DoOptions, fn func(store ListStore) error) error
	// Len returns the number of live sessions.
	Len() int
}
