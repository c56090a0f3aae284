package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account documents.
func newPgxAccountRepository(base BaseRepository) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// FindAccountByID retrieves an account by its identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return findDocument[domain.Account](ctx, &r.BaseRepository, portsrepo.CollectionAccounts, accountID)
}

// ListAccounts retrieves the full accounts snapshot.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return listDocuments[domain.Account](ctx, &r.BaseRepository, portsrepo.CollectionAccounts)
}

// SaveAccount upserts an account document.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionAccounts, account.AccountID, account)
}

// DeleteAccount removes an account document.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionAccounts, accountID)
}
