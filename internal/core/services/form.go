package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driven"
	"github.com/formery-dev/formery/internal/core/ports/driving"
	"github.com/formery-dev/formery/internal/logger"
)

// Ensure FormService implements the interface.
var _ driving.FormService = (*FormService)(nil)

// FormService orchestrates the form lifecycle: load spec, validate,
// number titles, push, and keep the local catalog in sync.
type FormService struct {
	client  driven.FormsClient
	loader  driven.SpecLoader
	catalog driven.CatalogStore
	now     func() time.Time
}

// NewFormService creates a new form service.
func NewFormService(client driven.FormsClient, loader driven.SpecLoader, catalog driven.CatalogStore) *FormService {
	return &FormService{
		client:  client,
		loader:  loader,
		catalog: catalog,
		now:     time.Now,
	}
}

// Validate loads and validates a spec offline and returns the plan a
// push would produce.
func (s *FormService) Validate(specPath string, numbering bool) (*domain.FormPlan, error) {
	spec, err := s.loader.Load(specPath)
	if err != nil {
		return nil, fmt.Errorf("load spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec.Plan(numbering), nil
}

// Push creates or updates a form from the spec at specPath.
func (s *FormService) Push(ctx context.Context, specPath string, opts driving.PushOptions) (*domain.FormRef, error) {
	plan, err := s.Validate(specPath, opts.Numbering)
	if err != nil {
		return nil, err
	}

	if opts.FormID == "" {
		logger.Info("creating form %q from %s", plan.Title, specPath)
		ref, err := s.client.Create(ctx, plan)
		if err != nil {
			return nil, fmt.Errorf("create form: %w", err)
		}
		ref.SpecPath = specPath
		ref.CreatedAt = s.now()
		ref.UpdatedAt = ref.CreatedAt
		if err := s.catalog.Save(ctx, *ref); err != nil {
			// The form exists remotely; a catalog failure should not
			// hide its ID from the user.
			logger.Warn("catalog save failed for %s: %v", ref.FormID, err)
		}
		return ref, nil
	}

	logger.Info("updating form %s from %s", opts.FormID, specPath)
	if err := s.client.Update(ctx, opts.FormID, plan); err != nil {
		return nil, fmt.Errorf("update form: %w", err)
	}

	ref := domain.FormRef{
		FormID:    opts.FormID,
		Title:     plan.Title,
		SpecPath:  specPath,
		UpdatedAt: s.now(),
	}
	if existing, err := s.catalog.Get(ctx, opts.FormID); err == nil {
		ref.CreatedAt = existing.CreatedAt
		ref.ResponderURI = existing.ResponderURI
	} else {
		ref.CreatedAt = ref.UpdatedAt
	}
	if err := s.catalog.Save(ctx, ref); err != nil {
		logger.Warn("catalog save failed for %s: %v", ref.FormID, err)
	}
	return &ref, nil
}

// List returns the user's forms, annotated with spec paths from the
// local catalog.
func (s *FormService) List(ctx context.Context) ([]domain.FormInfo, error) {
	infos, err := s.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	for i := range infos {
		ref, err := s.catalog.Get(ctx, infos[i].FormID)
		if err != nil {
			continue
		}
		infos[i].SpecPath = ref.SpecPath
	}
	return infos, nil
}

// Delete removes a form remotely and drops its catalog record.
func (s *FormService) Delete(ctx context.Context, formID string) error {
	if err := s.client.Delete(ctx, formID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Still drop a stale catalog record.
			_ = s.catalog.Delete(ctx, formID)
		}
		return fmt.Errorf("delete form: %w", err)
	}
	if err := s.catalog.Delete(ctx, formID); err != nil {
		logger.Warn("catalog delete failed for %s: %v", formID, err)
	}
	return nil
}

// Responses assembles a CSV-ready export of a form's responses.
func (s *FormService) Responses(ctx context.Context, formID string) (*domain.ResponseExport, error) {
	columns, records, err := s.client.Responses(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("fetch responses: %w", err)
	}
	logger.Debug("fetched %d responses across %d columns", len(records), len(columns))
	return domain.BuildExport(columns, records), nil
}
