package mapping

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lsotoflores/expenses_tracker_backend/internal/models"
)

// ToDocument wraps a domain value in its stored document envelope.
func ToDocument(collection string, docID string, value any) (models.Document, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to encode %s document %s: %w", collection, docID, err)
	}
	return models.Document{
		Collection: collection,
		DocID:      docID,
		Data:       data,
		UpdatedAt:  time.Now(),
	}, nil
}

// FromDocument decodes a stored document body into a domain value.
func FromDocument[T any](doc models.Document) (T, error) {
	var value T
	if err := json.Unmarshal(doc.Data, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s document %s: %w", doc.Collection, doc.DocID, err)
	}
	return value, nil
}
