package mapping

import (
	"time"

	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	"github.com/lsotoflores/expenses_tracker_backend/internal/models"
)

// ToChangeEvent builds the sync feed event for a document mutation.
func ToChangeEvent(collection portsrepo.Collection, docID string, action models.ChangeAction) models.ChangeEvent {
	return models.ChangeEvent{
		Collection: string(collection),
		DocID:      docID,
		Action:     action,
		OccurredAt: time.Now(),
	}
}
