package driven

import (
	"context"

	"github.com/formery-dev/formery/internal/core/domain"
)

// CatalogStore records the forms this tool has created, so list and
// delete can resolve them without extra remote calls.
type CatalogStore interface {
	// Save inserts or updates a catalog record.
	Save(ctx context.Context, ref domain.FormRef) error

	// Get returns the record for a form ID, or domain.ErrNotFound.
	Get(ctx context.Context, formID string) (*domain.FormRef, error)

	// List returns all records, most recently updated first.
	List(ctx context.Context) ([]domain.FormRef, error)

	// Delete removes a record. Deleting an absent record is not an error.
	Delete(ctx context.Context, formID string) error
}
