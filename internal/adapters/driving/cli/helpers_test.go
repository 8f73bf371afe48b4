package cli

import (
	"context"
	"errors"
	"time"

	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driving"
)

// mockFormService returns canned data for command tests.
type mockFormService struct {
	pushOpts    driving.PushOptions
	deletedID   string
	responsesID string
	err         error
}

var _ driving.FormService = (*mockFormService)(nil)

func (m *mockFormService) Validate(_ string, numbering bool) (*domain.FormPlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	title := "Q 1 — Where are you from?"
	if !numbering {
		title = "Where are you from?"
	}
	return &domain.FormPlan{
		Title:       "Test Survey",
		Description: "A survey for tests",
		Sections: []domain.PlannedSection{{
			Questions: []domain.PlannedQuestion{{
				Question: domain.Question{Type: domain.QuestionText, Title: "Where are you from?", Required: true},
				Title:    title,
			}},
		}},
	}, nil
}

func (m *mockFormService) Push(_ context.Context, specPath string, opts driving.PushOptions) (*domain.FormRef, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.pushOpts = opts
	formID := opts.FormID
	if formID == "" {
		formID = "form-created-1"
	}
	return &domain.FormRef{
		FormID:       formID,
		Title:        "Test Survey",
		SpecPath:     specPath,
		ResponderURI: "https://docs.google.com/forms/d/e/abc/viewform",
	}, nil
}

func (m *mockFormService) List(_ context.Context) ([]domain.FormInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.FormInfo{
		{
			FormID:       "form-1",
			Title:        "Test Survey",
			ModifiedTime: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			SpecPath:     "survey.yaml",
		},
		{
			FormID: "form-2",
			Title:  "Untracked Form",
		},
	}, nil
}

func (m *mockFormService) Delete(_ context.Context, formID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = formID
	return nil
}

func (m *mockFormService) Responses(_ context.Context, formID string) (*domain.ResponseExport, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.responsesID = formID
	return &domain.ResponseExport{
		Header: []string{"response_id", "submitted_at", "Q 1 — Where are you from?"},
		Rows: [][]string{
			{"resp-1", "2026-08-30T08:00:00Z", "Lisbon"},
		},
	}, nil
}

// setupTestServices installs a mock form service and returns a cleanup
// function restoring the previous one.
func setupTestServices() (*mockFormService, func()) {
	oldService := formService
	mock := &mockFormService{}
	formService = mock
	return mock, func() {
		formService = oldService
	}
}

var errMock = errors.New("mock failure")
