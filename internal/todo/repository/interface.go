package repository

import (
	"context"

	"todoboard/internal/model"
)

// StoreRepository is the interface for remote document store data access.
// Records come back already decoded into view-models; descriptions passed in
// must be fully packed (the repository never touches embedded metadata on
// the write path).
type StoreRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
	ListTodos(ctx context.Context) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}
