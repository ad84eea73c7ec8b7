package model

import "time"

// ChangeType classifies a change notification from the remote store.
type ChangeType string

const (
	ChangeCreated ChangeType = "record.created"
	ChangeUpdated ChangeType = "record.updated"
	ChangeDeleted ChangeType = "record.deleted"
)

// ChangeEvent is a parsed change notification from the store webhook.
type ChangeEvent struct {
	Type       ChangeType
	RecordID   string
	ReceivedAt time.Time
}
