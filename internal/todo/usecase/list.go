package usecase

import (
	"context"

	"todoboard/internal/todo"
)

// List relists from the store and returns the projected view.
func (uc *implUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	todos, err := uc.relist(ctx)
	if err != nil {
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{
		Todos: todo.Project(todos, input),
		Total: len(todos),
	}, nil
}

// Relist refreshes the snapshot without projecting. Driven by store change
// notifications.
func (uc *implUseCase) Relist(ctx context.Context) error {
	_, err := uc.relist(ctx)
	return err
}
