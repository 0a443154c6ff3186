package todo

import "errors"

var (
	// ErrEmptyText is returned when a todo text is empty after trimming.
	ErrEmptyText = errors.New("todo text is empty")
	// ErrIndexOutOfRange is returned when an index, or the string it was
	// parsed from, does not address an existing todo.
	ErrIndexOutOfRange = errors.New("todo index out of range")
	// ErrNoScope is returned when an operation is invoked without a session.
	ErrNoScope = errors.New("missing session scope")
)
