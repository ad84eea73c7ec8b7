package sync

import (
	"encoding/json"
	"time"

	"todoboard/internal/model"
)

// StoreWebhookPayload matches the store's change notification format.
type StoreWebhookPayload struct {
	ActivityType string `json:"activityType"` // e.g. "record.created"
	Record       struct {
		ID string `json:"id"`
	} `json:"record"`
}

// ChangeNotice is the message broadcast to subscribed clients after a
// relist. Clients are expected to re-fetch the projection on receipt.
type ChangeNotice struct {
	Event    string `json:"event"` // always "list_changed"
	RecordID string `json:"record_id,omitempty"`
}

func parsePayload(body []byte) (StoreWebhookPayload, error) {
	var p StoreWebhookPayload
	err := json.Unmarshal(body, &p)
	return p, err
}

// toEvent lifts the raw payload into the domain change event.
func (p StoreWebhookPayload) toEvent() model.ChangeEvent {
	return model.ChangeEvent{
		Type:       model.ChangeType(p.ActivityType),
		RecordID:   p.Record.ID,
		ReceivedAt: time.Now(),
	}
}
