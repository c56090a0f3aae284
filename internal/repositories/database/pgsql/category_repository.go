package pgsql

import (
	"context"

	"github.com/lsotoflores/expenses_tracker_backend/internal/core/domain"
	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category documents.
func newPgxCategoryRepository(base BaseRepository) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// FindCategoryByID retrieves a category by its identifier.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return findDocument[domain.Category](ctx, &r.BaseRepository, portsrepo.CollectionCategories, categoryID)
}

// ListCategories retrieves the full categories snapshot.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return listDocuments[domain.Category](ctx, &r.BaseRepository, portsrepo.CollectionCategories)
}

// SaveCategory upserts a category document.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return saveDocument(ctx, &r.BaseRepository, portsrepo.CollectionCategories, category.CategoryID, category)
}

// DeleteCategory removes a category document.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return deleteDocument(ctx, &r.BaseRepository, portsrepo.CollectionCategories, categoryID)
}
