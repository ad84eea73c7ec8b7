package usecase

import (
	"context"

	"todoboard/internal/todo"
)

// Delete removes a todo by ID and relists.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, ok := uc.find(ctx, id); !ok {
		return todo.ErrTodoNotFound
	}

	if err := uc.repo.DeleteTodo(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}

	if _, err := uc.relist(ctx); err != nil {
		return err
	}
	return nil
}
