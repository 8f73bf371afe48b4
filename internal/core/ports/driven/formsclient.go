package driven

import (
	"context"

	"github.com/formery-dev/formery/internal/core/domain"
)

// FormsClient performs remote operations against the forms provider.
// Implementations own transport concerns (auth, rate limiting, retries);
// callers see domain types only.
type FormsClient interface {
	// Create builds a new remote form from the plan and returns its
	// identifiers.
	Create(ctx context.Context, plan *domain.FormPlan) (*domain.FormRef, error)

	// Update replaces the items of an existing form with the plan's.
	Update(ctx context.Context, formID string, plan *domain.FormPlan) error

	// List returns the user's forms.
	List(ctx context.Context) ([]domain.FormInfo, error)

	// Delete removes a form. Returns domain.ErrNotFound when the form
	// does not exist.
	Delete(ctx context.Context, formID string) error

	// Responses fetches the form's submitted responses together with
	// the answer columns in form item order.
	Responses(ctx context.Context, formID string) ([]domain.ResponseColumn, []domain.ResponseRecord, error)
}
