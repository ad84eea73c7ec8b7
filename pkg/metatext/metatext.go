// Package metatext packs and unpacks structured todo metadata embedded in a
// free-text description field. The remote store only gives us a name and a
// description string per record, so completion state and the update timestamp
// ride along as a JSON object behind a fixed marker at the end of the text.
package metatext

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Marker separates the free-text body from the trailing metadata JSON.
const Marker = "\n\n---\nmeta:"

// Meta is the structured metadata carried inside a description field.
type Meta struct {
	Done      bool   `json:"done"`
	UpdatedAt *int64 `json:"updatedAt,omitempty"` // epoch milliseconds
}

// Pack appends the marker and the JSON-serialized meta to body.
func Pack(body string, meta Meta) string {
	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString(Marker)

	b, err := json.Marshal(meta)
	if err != nil {
		// Cannot happen for this fixed shape, but keep the record readable.
		sb.WriteString(`{"done":false}`)
		return sb.String()
	}
	sb.Write(b)
	return sb.String()
}

// Unpack splits a description into its free-text body and metadata.
//
// The split happens at the last occurrence of the marker, so a body that
// itself contains the marker literal stays intact. When the marker is absent
// or the trailing JSON does not parse, the whole input is returned as body
// with zero metadata.
func Unpack(description string) (string, Meta) {
	if description == "" {
		return "", Meta{}
	}

	idx := strings.LastIndex(description, Marker)
	if idx < 0 {
		return description, Meta{}
	}

	tail := description[idx+len(Marker):]
	if !gjson.Valid(tail) {
		return description, Meta{}
	}

	meta := Meta{Done: gjson.Get(tail, "done").Bool()}
	if r := gjson.Get(tail, "updatedAt"); r.Exists() {
		ms := r.Int()
		meta.UpdatedAt = &ms
	}
	return description[:idx], meta
}
