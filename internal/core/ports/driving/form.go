package driving

import (
	"context"

	"github.com/formery-dev/formery/internal/core/domain"
)

// PushOptions control how a spec is pushed to the provider.
type PushOptions struct {
	// FormID, when set, updates an existing form instead of creating
	// a new one.
	FormID string
	// Numbering enables title auto-numbering (on by default).
	Numbering bool
}

// FormService exposes the form lifecycle operations to the CLI.
type FormService interface {
	// Validate loads and validates a spec offline and returns the
	// plan that a push would produce.
	Validate(specPath string, numbering bool) (*domain.FormPlan, error)

	// Push creates or updates a form from the spec at specPath.
	Push(ctx context.Context, specPath string, opts PushOptions) (*domain.FormRef, error)

	// List returns the user's forms, annotated from the local catalog.
	List(ctx context.Context) ([]domain.FormInfo, error)

	// Delete removes a form remotely and from the local catalog.
	Delete(ctx context.Context, formID string) error

	// Responses assembles a response export for a form.
	Responses(ctx context.Context, formID string) (*domain.ResponseExport, error)
}
