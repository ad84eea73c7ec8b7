package model

// Todo is the derived view-model served to clients. It is recomputed from
// the store's flat records on every relist and never persisted. Completion
// state and the update timestamp ride inside the record's description field
// behind the metatext marker; the store itself knows nothing about them.
type Todo struct {
	ID        string
	Title     string
	Memo      string // text preceding the metadata marker
	Done      bool
	UpdatedAt *int64 // epoch ms from embedded metadata, nil when absent
	CreatedAt int64  // epoch ms parsed from the store value, 0 when unparseable
}
