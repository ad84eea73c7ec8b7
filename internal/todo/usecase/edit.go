package usecase

import (
	"context"
	"strings"

	"todoboard/internal/todo"
	"todoboard/internal/todo/repository"
	"todoboard/pkg/metatext"
)

// Edit replaces title and memo, preserving the done flag and refreshing the
// update timestamp.
func (uc *implUseCase) Edit(ctx context.Context, input todo.EditInput) (todo.EditOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.EditOutput{}, todo.ErrEmptyTitle
	}

	current, ok := uc.find(ctx, input.ID)
	if !ok {
		return todo.EditOutput{}, todo.ErrTodoNotFound
	}

	now := nowMillis()
	description := metatext.Pack(input.Memo, metatext.Meta{
		Done:      current.Done,
		UpdatedAt: &now,
	})

	updated, err := uc.repo.UpdateTodo(ctx, repository.UpdateTodoOptions{
		ID:          input.ID,
		Name:        title,
		Description: description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit UpdateTodo: %v", err)
		return todo.EditOutput{}, err
	}

	if _, err := uc.relist(ctx); err != nil {
		return todo.EditOutput{}, err
	}

	return todo.EditOutput{Todo: updated}, nil
}
