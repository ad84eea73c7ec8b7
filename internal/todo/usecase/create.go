package usecase

import (
	"context"
	"strings"

	"todoboard/internal/todo"
	"todoboard/internal/todo/repository"
	"todoboard/pkg/metatext"
)

// Create validates the title, packs fresh metadata into the description and
// creates the record, then relists.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateOutput{}, todo.ErrEmptyTitle
	}

	now := nowMillis()
	description := metatext.Pack(input.Memo, metatext.Meta{
		Done:      false,
		UpdatedAt: &now,
	})

	created, err := uc.repo.CreateTodo(ctx, repository.CreateTodoOptions{
		Name:        title,
		Description: description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateOutput{}, err
	}

	if _, err := uc.relist(ctx); err != nil {
		return todo.CreateOutput{}, err
	}

	return todo.CreateOutput{Todo: created}, nil
}
