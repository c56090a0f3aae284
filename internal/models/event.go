package models

import "time"

// ChangeAction describes what happened to a document.
type ChangeAction string

const (
	ChangeUpsert ChangeAction = "upsert"
	ChangeDelete ChangeAction = "delete"
)

// ChangeEvent is the wire form of a collection change published to the sync
// feed. Consumers (the mobile clients' sync workers) re-pull the named
// collection; the event intentionally carries no document body.
type ChangeEvent struct {
	Collection string       `json:"collection"`
	DocID      string       `json:"docID"`
	Action     ChangeAction `json:"action"`
	OccurredAt time.Time    `json:"occurredAt"`
}
