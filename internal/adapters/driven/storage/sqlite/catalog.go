// Package sqlite provides the SQLite-backed catalog of forms this tool
// has created.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.CatalogStore = (*Catalog)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS forms (
	form_id       TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	spec_path     TEXT NOT NULL DEFAULT '',
	responder_uri TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
`

// Catalog is a SQLite-backed CatalogStore.
type Catalog struct {
	db   *sql.DB
	path string
}

// NewCatalog opens (or creates) the catalog database at the specified
// data directory. If dataDir is empty, defaults to ~/.formery/data.
func NewCatalog(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".formery", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Catalog{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// Save inserts or updates a catalog record.
func (c *Catalog) Save(ctx context.Context, ref domain.FormRef) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO forms (form_id, title, spec_path, responder_uri, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(form_id) DO UPDATE SET
			title = excluded.title,
			spec_path = excluded.spec_path,
			responder_uri = excluded.responder_uri,
			updated_at = excluded.updated_at`,
		ref.FormID, ref.Title, ref.SpecPath, ref.ResponderURI,
		ref.CreatedAt.UTC().Format(time.RFC3339), ref.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving form record: %w", err)
	}
	return nil
}

// Get returns the record for a form ID.
func (c *Catalog) Get(ctx context.Context, formID string) (*domain.FormRef, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT form_id, title, spec_path, responder_uri, created_at, updated_at
		FROM forms WHERE form_id = ?`, formID)

	ref, err := scanRef(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading form record: %w", err)
	}
	return ref, nil
}

// List returns all records, most recently updated first.
func (c *Catalog) List(ctx context.Context) ([]domain.FormRef, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT form_id, title, spec_path, responder_uri, created_at, updated_at
		FROM forms ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing form records: %w", err)
	}
	defer rows.Close()

	var refs []domain.FormRef
	for rows.Next() {
		ref, err := scanRef(rows)
		if err != nil {
			return nil, fmt.Errorf("reading form record: %w", err)
		}
		refs = append(refs, *ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing form records: %w", err)
	}
	return refs, nil
}

// Delete removes a record. Deleting an absent record is not an error.
func (c *Catalog) Delete(ctx context.Context, formID string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM forms WHERE form_id = ?`, formID); err != nil {
		return fmt.Errorf("deleting form record: %w", err)
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRef(s scanner) (*domain.FormRef, error) {
	var ref domain.FormRef
	var createdAt, updatedAt string

	if err := s.Scan(&ref.FormID, &ref.Title, &ref.SpecPath, &ref.ResponderURI, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if ref.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if ref.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &ref, nil
}
