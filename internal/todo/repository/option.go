package repository

// CreateTodoOptions holds the parameters for creating a record in the store.
type CreateTodoOptions struct {
	Name        string // title
	Description string // packed free text, metadata included
}

// UpdateTodoOptions holds the parameters for a full-field record replacement.
type UpdateTodoOptions struct {
	ID          string
	Name        string
	Description string
}
