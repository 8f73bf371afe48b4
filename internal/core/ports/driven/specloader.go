package driven

import "github.com/formery-dev/formery/internal/core/domain"

// SpecLoader parses an author-facing form spec file.
type SpecLoader interface {
	// Load reads and parses the spec at path. Parsing is strict:
	// unknown fields are an error.
	Load(path string) (*domain.FormSpec, error)
}
