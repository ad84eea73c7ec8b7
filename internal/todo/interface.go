package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create validates the title, packs fresh metadata, creates the record
	// in the store and relists.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List relists from the store and returns the filtered/sorted/searched
	// projection.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Toggle flips the done flag of one todo, refreshing its update timestamp.
	Toggle(ctx context.Context, id string) (ToggleOutput, error)

	// Edit replaces title and memo, preserving the done flag.
	Edit(ctx context.Context, input EditInput) (EditOutput, error)

	// Delete removes a todo from the store and relists.
	Delete(ctx context.Context, id string) error

	// Relist re-fetches the full record set, replacing the in-memory snapshot.
	// Called on store change notifications.
	Relist(ctx context.Context) error
}
