package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyTitle   = errors.New("title is empty")
	ErrTodoNotFound = errors.New("todo not found")
)
