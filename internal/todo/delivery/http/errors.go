package http

import (
	"errors"

	"todoboard/internal/todo"
	"todoboard/pkg/response"
)

// mapError translates domain errors into HTTP errors. Unknown errors become
// an opaque 500 so store failures never leak internals to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrEmptyTitle):
		return response.NewHTTPError(400, "title must not be empty")
	case errors.Is(err, todo.ErrTodoNotFound):
		return response.NewHTTPError(404, "todo not found")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
