// Package schema loads author-facing YAML form specs.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.SpecLoader = (*Loader)(nil)

// Loader parses YAML form specs from disk. Decoding is strict: unknown
// fields are an error, so typos in the spec surface immediately.
type Loader struct{}

// NewLoader creates a new spec loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the spec at path.
func (l *Loader) Load(path string) (*domain.FormSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec domain.FormSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, domain.ErrInvalidSpec)
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &spec, nil
}
