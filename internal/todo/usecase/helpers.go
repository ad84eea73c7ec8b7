package usecase

import (
	"context"
	"time"

	"todoboard/internal/model"
)

// nowMillis returns the current time as epoch milliseconds for embedded
// metadata timestamps.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// relist re-fetches the full record set from the store and swaps the
// snapshot. Returns the fresh set.
func (uc *implUseCase) relist(ctx context.Context) ([]model.Todo, error) {
	todos, err := uc.repo.ListTodos(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.relist ListTodos: %v", err)
		return nil, err
	}

	uc.mu.Lock()
	uc.snapshot = todos
	uc.mu.Unlock()
	return todos, nil
}

// find looks up a todo by id in the snapshot; on a miss it relists once and
// retries, so a record created out-of-band is still addressable.
func (uc *implUseCase) find(ctx context.Context, id string) (model.Todo, bool) {
	uc.mu.RLock()
	for _, t := range uc.snapshot {
		if t.ID == id {
			uc.mu.RUnlock()
			return t, true
		}
	}
	uc.mu.RUnlock()

	todos, err := uc.relist(ctx)
	if err != nil {
		return model.Todo{}, false
	}
	for _, t := range todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}
