package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formery-dev/formery/internal/core/domain"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func testRef(id string) domain.FormRef {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.FormRef{
		FormID:       id,
		Title:        "Event feedback",
		SpecPath:     "specs/feedback.yaml",
		ResponderURI: "https://docs.google.com/forms/d/e/xyz/viewform",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCatalog_SaveGet(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.Save(ctx, testRef("form-1")))

	got, err := catalog.Get(ctx, "form-1")
	require.NoError(t, err)
	assert.Equal(t, "Event feedback", got.Title)
	assert.Equal(t, "specs/feedback.yaml", got.SpecPath)
	assert.Equal(t, 2026, got.CreatedAt.Year())
}

func TestCatalog_Get_Missing(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Save_Upserts(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	ref := testRef("form-1")
	require.NoError(t, catalog.Save(ctx, ref))

	ref.Title = "Renamed"
	ref.UpdatedAt = ref.UpdatedAt.Add(time.Hour)
	require.NoError(t, catalog.Save(ctx, ref))

	got, err := catalog.Get(ctx, "form-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	refs, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestCatalog_List_OrdersByUpdatedAt(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	older := testRef("form-old")
	newer := testRef("form-new")
	newer.UpdatedAt = newer.UpdatedAt.Add(time.Hour)

	require.NoError(t, catalog.Save(ctx, older))
	require.NoError(t, catalog.Save(ctx, newer))

	refs, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "form-new", refs[0].FormID)
}

func TestCatalog_Delete(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.Save(ctx, testRef("form-1")))
	require.NoError(t, catalog.Delete(ctx, "form-1"))

	_, err := catalog.Get(ctx, "form-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, catalog.Delete(ctx, "form-1"), "deleting absent record is fine")
}
