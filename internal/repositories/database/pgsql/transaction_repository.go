package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	"github.com/lsotoflores/expenses_tracker_backend/internal/models"
	"github.com/lsotoflores/expenses_tracker_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger documents.
func newPgxTransactionRepository(base BaseRepository) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// ListTransactions retrieves the full ledger snapshot.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return listDocuments[domain.Transaction](ctx, &r.BaseRepository, portsrepo.CollectionTransactions)
}

// ListTransactionsByAccount retrieves ledger entries for one account, newest
// first. The filter and ordering run on the document body's indexed fields;
// limit <= 0 means no limit.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, before *time.Time, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT collection, doc_id, data, updated_at
		FROM documents
		WHERE collection = $1
		  AND data->>'accountID' = $2
		  AND ($3::timestamptz IS NULL OR (data->>'date')::timestamptz < $3)
		ORDER BY (data->>'date')::timestamptz DESC
	`
	args := []any{string(portsrepo.CollectionTransactions), accountID, before}
	if limit > 0 {
		query += ` LIMIT $4`
		args = append(args, limit)
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0)
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.Collection, &doc.DocID, &doc.Data, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction document: %w", err)
		}
		txn, err := mapping.FromDocument[domain.Transaction](doc)
		if err != nil {
			r.Diag.MalformedDocument()
			slog.WarnContext(ctx, "Skipping malformed document",
				slog.String("collection", string(portsrepo.CollectionTransactions)),
				slog.String("doc_id", doc.DocID),
				slog.Any("error", err))
			continue
		}
		out = append(out, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction documents: %w", err)
	}
	return out, nil
}

// FindTransactionByExpenseID retrieves the single posting linked to an
// expense, or apperrors.ErrNotFound when the expense has none.
func (r *PgxTransactionRepository) FindTransactionByExpenseID(ctx context.Context, expenseID string) (*domain.Transaction, error) {
	query := `
		SELECT collection, doc_id, data, updated_at
		FROM documents
		WHERE collection = $1 AND data->>'expenseID' = $2
		LIMIT 1;
	`
	var doc models.Document
	err := r.Pool.QueryRow(ctx, query, string(portsrepo.CollectionTransactions), expenseID).
		Scan(&doc.Collection, &doc.DocID, &doc.Data, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find posting for expense %s: %w", expenseID, err)
	}

	txn, err := mapping.FromDocument[domain.Transaction](doc)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// SaveTransaction appends a ledger entry document.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionTransactions, txn.TransactionID, txn)
}

// DeleteTransaction removes a ledger entry document.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionTransactions, transactionID)
}
