// Package models holds the wire representations stored in or emitted by the
// persistence layer, as opposed to the domain structs the services work with.
package models

import (
	"encoding/json"
	"time"
)

// Document is the stored envelope of every entity. Entities are kept as
// schemaless JSON documents in per-collection namespaces; the envelope adds
// the identity and bookkeeping columns the store indexes on.
type Document struct {
	Collection string          `json:"collection"`
	DocID      string          `json:"docID"`
	Data       json.RawMessage `json:"data"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
