// Package pgsql implements the document-store repositories over PostgreSQL.
// Every entity lives as a JSONB document in a single documents table keyed by
// (collection, doc_id); repositories load whole-collection snapshots and
// upsert single documents, mirroring how the mobile clients sync.
package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lsotoflores/expenses_tracker_backend/internal/apperrors"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	"github.com/lsotoflores/expenses_tracker_backend/internal/models"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/diagnostics"
	"github.com/lsotoflores/expenses_tracker_backend/internal/utils/mapping"
)

// BaseRepository provides the shared document-store plumbing for all
// repositories: the pool, the change notifier and the diagnostics sink.
type BaseRepository struct {
	Pool     *pgxpool.Pool
	Notifier *ChangeNotifier
	Diag     *diagnostics.Diagnostics
}

// saveDocument upserts one document and signals the collection change.
func saveDocument(ctx context.Context, r *BaseRepository, collection portsrepo.Collection, docID string, value any) error {
	doc, err := mapping.ToDocument(string(collection), docID, value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (collection, doc_id, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collection, doc_id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at;
	`
	_, err = r.Pool.Exec(ctx, query, doc.Collection, doc.DocID, []byte(doc.Data), doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save %s document %s: %w", collection, docID, err)
	}

	r.Notifier.Notify(ctx, collection, docID, models.ChangeUpsert)
	return nil
}

// deleteDocument removes one document and signals the collection change.
// Deleting a nonexistent document is not an error.
func deleteDocument(ctx context.Context, r *BaseRepository, collection portsrepo.Collection, docID string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND doc_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, string(collection), docID)
	if err != nil {
		return fmt.Errorf("failed to delete %s document %s: %w", collection, docID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	r.Notifier.Notify(ctx, collection, docID, models.ChangeDelete)
	return nil
}

// findDocument retrieves and decodes a single document, or
// apperrors.ErrNotFound when it does not exist.
func findDocument[T any](ctx context.Context, r *BaseRepository, collection portsrepo.Collection, docID string) (*T, error) {
	query := `SELECT collection, doc_id, data, updated_at FROM documents WHERE collection = $1 AND doc_id = $2;`

	var doc models.Document
	err := r.Pool.QueryRow(ctx, query, string(collection), docID).Scan(&doc.Collection, &doc.DocID, &doc.Data, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s document %s: %w", collection, docID, err)
	}

	value, err := mapping.FromDocument[T](doc)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// listDocuments loads the full collection snapshot. Documents that fail to
// decode are skipped with a diagnostics bump rather than failing the whole
// snapshot; one corrupt write from an old client version must not take the
// collection down.
func listDocuments[T any](ctx context.Context, r *BaseRepository, collection portsrepo.Collection) ([]T, error) {
	query := `SELECT collection, doc_id, data, updated_at FROM documents WHERE collection = $1 ORDER BY updated_at;`

	rows, err := r.Pool.Query(ctx, query, string(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", collection, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.Collection, &doc.DocID, &doc.Data, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", collection, err)
		}
		value, err := mapping.FromDocument[T](doc)
		if err != nil {
			r.Diag.MalformedDocument()
			slog.WarnContext(ctx, "Skipping malformed document",
				slog.String("collection", string(collection)),
				slog.String("doc_id", doc.DocID),
				slog.Any("error", err))
			continue
		}
		out = append(out, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s documents: %w", collection, err)
	}
	return out, nil
}
