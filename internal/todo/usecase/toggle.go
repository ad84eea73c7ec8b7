package usecase

import (
	"context"

	"todoboard/internal/todo"
	"todoboard/internal/todo/repository"
	"todoboard/pkg/metatext"
)

// Toggle flips the done flag of one todo and refreshes its update timestamp.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (todo.ToggleOutput, error) {
	current, ok := uc.find(ctx, id)
	if !ok {
		return todo.ToggleOutput{}, todo.ErrTodoNotFound
	}

	now := nowMillis()
	description := metatext.Pack(current.Memo, metatext.Meta{
		Done:      !current.Done,
		UpdatedAt: &now,
	})

	updated, err := uc.repo.UpdateTodo(ctx, repository.UpdateTodoOptions{
		ID:          id,
		Name:        current.Title,
		Description: description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTodo: %v", err)
		return todo.ToggleOutput{}, err
	}

	if _, err := uc.relist(ctx); err != nil {
		return todo.ToggleOutput{}, err
	}

	return todo.ToggleOutput{Todo: updated}, nil
}
