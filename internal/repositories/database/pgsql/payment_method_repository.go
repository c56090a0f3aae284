package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxPaymentMethodRepository struct {
	BaseRepository
}

// newPgxPaymentMethodRepository creates a new repository for payment method documents.
func newPgxPaymentMethodRepository(base BaseRepository) portsrepo.PaymentMethodRepository {
	return &PgxPaymentMethodRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentMethodRepository = (*PgxPaymentMethodRepository)(nil)

// FindPaymentMethodByID retrieves a payment method by its identifier.
func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	return findDocument[domain.PaymentMethod](ctx, &r.BaseRepository, portsrepo.CollectionPaymentMethods, paymentMethodID)
}

// ListPaymentMethods retrieves the full payment methods snapshot.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return listDocuments[domain.PaymentMethod](ctx, &r.BaseRepository, portsrepo.CollectionPaymentMethods)
}

// SavePaymentMethod upserts a payment method document.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, paymentMethod domain.PaymentMethod) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionPaymentMethods, paymentMethod.PaymentMethodID, paymentMethod)
}

// DeletePaymentMethod removes a payment method document.
func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionPaymentMethods, paymentMethodID)
}
