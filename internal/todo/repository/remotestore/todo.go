package remotestore

import (
	"context"
	"time"

	"todoboard/internal/model"
	"todoboard/internal/todo/repository"
	pkgLog "todoboard/pkg/log"
	"todoboard/pkg/metatext"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new remote store repository.
func New(client *Client, l pkgLog.Logger) repository.StoreRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (model.Todo, error) {
	record, err := r.client.CreateRecord(ctx, CreateRecordRequest{
		Name:        opt.Name,
		Description: opt.Description,
	})
	if err != nil {
		r.l.Errorf(ctx, "remotestore repository: failed to create record: %v", err)
		return model.Todo{}, err
	}
	return recordToTodo(record), nil
}

func (r *implRepository) ListTodos(ctx context.Context) ([]model.Todo, error) {
	records, err := r.client.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]model.Todo, 0, len(records))
	for i := range records {
		todos = append(todos, recordToTodo(&records[i]))
	}
	return todos, nil
}

func (r *implRepository) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (model.Todo, error) {
	record, err := r.client.UpdateRecord(ctx, opt.ID, UpdateRecordRequest{
		Name:        opt.Name,
		Description: opt.Description,
	})
	if err != nil {
		r.l.Errorf(ctx, "remotestore repository: failed to update record %s: %v", opt.ID, err)
		return model.Todo{}, err
	}
	return recordToTodo(record), nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, id string) error {
	if err := r.client.DeleteRecord(ctx, id); err != nil {
		r.l.Errorf(ctx, "remotestore repository: failed to delete record %s: %v", id, err)
		return err
	}
	return nil
}

// recordToTodo converts a store API record to the view-model, unpacking the
// metadata embedded in the description field.
func recordToTodo(rec *Record) model.Todo {
	body, meta := metatext.Unpack(rec.Description)

	var createdAt int64
	if ts, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		createdAt = ts.UnixMilli()
	}

	return model.Todo{
		ID:        rec.ID,
		Title:     rec.Name,
		Memo:      body,
		Done:      meta.Done,
		UpdatedAt: meta.UpdatedAt,
		CreatedAt: createdAt,
	}
}
