package usecase

import (
	"sync"

	"todoboard/internal/model"
	"todoboard/internal/todo/repository"
	pkgLog "todoboard/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
//
// It keeps an in-memory snapshot of the full decoded record set. The snapshot
// is only ever replaced wholesale after a relist, never patched in place, so
// a relist racing a mutation's own relist converges on the authoritative list.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.StoreRepository

	mu       sync.RWMutex
	snapshot []model.Todo
}

// New creates a new todo UseCase implementation.
func New(l pkgLog.Logger, repo repository.StoreRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
