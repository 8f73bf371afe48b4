package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driving"
)

// fakeLoader returns a fixed spec for any path.
type fakeLoader struct {
	spec *domain.FormSpec
	err  error
}

func (f *fakeLoader) Load(string) (*domain.FormSpec, error) {
	return f.spec, f.err
}

// fakeClient records calls and returns canned values.
type fakeClient struct {
	createdPlan *domain.FormPlan
	updatedID   string
	updatedPlan *domain.FormPlan
	deletedID   string

	createRef *domain.FormRef
	listInfos []domain.FormInfo
	columns   []domain.ResponseColumn
	records   []domain.ResponseRecord

	createErr, updateErr, listErr, deleteErr, responsesErr error
}

func (f *fakeClient) Create(_ context.Context, plan *domain.FormPlan) (*domain.FormRef, error) {
	f.createdPlan = plan
	if f.createErr != nil {
		return nil, f.createErr
	}
	ref := *f.createRef
	return &ref, nil
}

func (f *fakeClient) Update(_ context.Context, formID string, plan *domain.FormPlan) error {
	f.updatedID = formID
	f.updatedPlan = plan
	return f.updateErr
}

func (f *fakeClient) List(context.Context) ([]domain.FormInfo, error) {
	return f.listInfos, f.listErr
}

func (f *fakeClient) Delete(_ context.Context, formID string) error {
	f.deletedID = formID
	return f.deleteErr
}

func (f *fakeClient) Responses(context.Context, string) ([]domain.ResponseColumn, []domain.ResponseRecord, error) {
	return f.columns, f.records, f.responsesErr
}

// fakeCatalog is an in-memory CatalogStore.
type fakeCatalog struct {
	refs map[string]domain.FormRef
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{refs: make(map[string]domain.FormRef)}
}

func (f *fakeCatalog) Save(_ context.Context, ref domain.FormRef) error {
	f.refs[ref.FormID] = ref
	return nil
}

func (f *fakeCatalog) Get(_ context.Context, formID string) (*domain.FormRef, error) {
	ref, ok := f.refs[formID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ref, nil
}

func (f *fakeCatalog) List(context.Context) ([]domain.FormRef, error) {
	out := make([]domain.FormRef, 0, len(f.refs))
	for _, ref := range f.refs {
		out = append(out, ref)
	}
	return out, nil
}

func (f *fakeCatalog) Delete(_ context.Context, formID string) error {
	delete(f.refs, formID)
	return nil
}

func testSpec() *domain.FormSpec {
	return &domain.FormSpec{
		Title: "Event feedback",
		Questions: []domain.Question{
			{Type: domain.QuestionText, Title: "Where from?"},
		},
	}
}

func TestFormService_Validate(t *testing.T) {
	t.Run("returns the numbered plan", func(t *testing.T) {
		svc := NewFormService(&fakeClient{}, &fakeLoader{spec: testSpec()}, newFakeCatalog())

		plan, err := svc.Validate("spec.yaml", true)

		require.NoError(t, err)
		require.Len(t, plan.Sections, 1)
		assert.Equal(t, "Q 1 — Where from?", plan.Sections[0].Questions[0].Title)
	})

	t.Run("surfaces validation failures", func(t *testing.T) {
		spec := testSpec()
		spec.Title = ""
		svc := NewFormService(&fakeClient{}, &fakeLoader{spec: spec}, newFakeCatalog())

		_, err := svc.Validate("spec.yaml", true)

		assert.ErrorIs(t, err, domain.ErrInvalidSpec)
	})
}

func TestFormService_Push_Create(t *testing.T) {
	client := &fakeClient{
		createRef: &domain.FormRef{FormID: "form-1", Title: "Event feedback", ResponderURI: "https://forms/r"},
	}
	catalog := newFakeCatalog()
	svc := NewFormService(client, &fakeLoader{spec: testSpec()}, catalog)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	ref, err := svc.Push(context.Background(), "spec.yaml", driving.PushOptions{Numbering: true})

	require.NoError(t, err)
	assert.Equal(t, "form-1", ref.FormID)
	assert.Equal(t, "spec.yaml", ref.SpecPath)

	// The numbered plan went to the client.
	require.NotNil(t, client.createdPlan)
	assert.Equal(t, "Q 1 — Where from?", client.createdPlan.Sections[0].Questions[0].Title)

	// The catalog recorded the form.
	saved, err := catalog.Get(context.Background(), "form-1")
	require.NoError(t, err)
	assert.Equal(t, "spec.yaml", saved.SpecPath)
	assert.Equal(t, 2026, saved.CreatedAt.Year())
}

func TestFormService_Push_Update(t *testing.T) {
	client := &fakeClient{}
	catalog := newFakeCatalog()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.Save(context.Background(), domain.FormRef{
		FormID:    "form-1",
		CreatedAt: created,
	}))

	svc := NewFormService(client, &fakeLoader{spec: testSpec()}, catalog)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	ref, err := svc.Push(context.Background(), "spec.yaml", driving.PushOptions{FormID: "form-1", Numbering: true})

	require.NoError(t, err)
	assert.Equal(t, "form-1", client.updatedID)
	assert.Equal(t, created, ref.CreatedAt, "created timestamp survives updates")
	assert.Equal(t, 3, int(ref.UpdatedAt.Month()))
}

func TestFormService_Push_NumberingDisabled(t *testing.T) {
	client := &fakeClient{createRef: &domain.FormRef{FormID: "form-1"}}
	svc := NewFormService(client, &fakeLoader{spec: testSpec()}, newFakeCatalog())

	_, err := svc.Push(context.Background(), "spec.yaml", driving.PushOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Where from?", client.createdPlan.Sections[0].Questions[0].Title)
}

func TestFormService_List_AnnotatesFromCatalog(t *testing.T) {
	client := &fakeClient{listInfos: []domain.FormInfo{
		{FormID: "form-1", Title: "Known"},
		{FormID: "form-2", Title: "Foreign"},
	}}
	catalog := newFakeCatalog()
	require.NoError(t, catalog.Save(context.Background(), domain.FormRef{FormID: "form-1", SpecPath: "spec.yaml"}))

	svc := NewFormService(client, &fakeLoader{spec: testSpec()}, catalog)

	infos, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "spec.yaml", infos[0].SpecPath)
	assert.Empty(t, infos[1].SpecPath)
}

func TestFormService_Delete(t *testing.T) {
	t.Run("drops catalog record on success", func(t *testing.T) {
		client := &fakeClient{}
		catalog := newFakeCatalog()
		require.NoError(t, catalog.Save(context.Background(), domain.FormRef{FormID: "form-1"}))

		svc := NewFormService(client, &fakeLoader{spec: testSpec()}, catalog)
		require.NoError(t, svc.Delete(context.Background(), "form-1"))

		assert.Equal(t, "form-1", client.deletedID)
		_, err := catalog.Get(context.Background(), "form-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("drops stale record when remote form is gone", func(t *testing.T) {
		client := &fakeClient{deleteErr: domain.ErrNotFound}
		catalog := newFakeCatalog()
		require.NoError(t, catalog.Save(context.Background(), domain.FormRef{FormID: "form-1"}))

		svc := NewFormService(client, &fakeLoader{spec: testSpec()}, catalog)
		err := svc.Delete(context.Background(), "form-1")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, getErr := catalog.Get(context.Background(), "form-1")
		assert.ErrorIs(t, getErr, domain.ErrNotFound)
	})
}

func TestFormService_Responses(t *testing.T) {
	client := &fakeClient{
		columns: []domain.ResponseColumn{{QuestionID: "q1", Title: "Q 1 — Where from?"}},
		records: []domain.ResponseRecord{
			{
				ResponseID:  "r1",
				SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				Answers:     map[string][]string{"q1": {"Berlin"}},
			},
		},
	}
	svc := NewFormService(client, &fakeLoader{spec: testSpec()}, newFakeCatalog())

	export, err := svc.Responses(context.Background(), "form-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"response_id", "submitted_at", "Q 1 — Where from?"}, export.Header)
	require.Len(t, export.Rows, 1)
	assert.Equal(t, "Berlin", export.Rows[0][2])
}
