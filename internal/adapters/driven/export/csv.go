// Package export serialises response exports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driven"
)

// Ensure CSVWriter implements the interface.
var _ driven.ResponseWriter = (*CSVWriter)(nil)

// CSVWriter writes response exports as RFC 4180 CSV.
type CSVWriter struct {
	out io.Writer
}

// NewCSVWriter creates a CSV response writer targeting out.
func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: out}
}

// Write emits the header followed by one row per response.
func (w *CSVWriter) Write(export *domain.ResponseExport) error {
	cw := csv.NewWriter(w.out)

	if err := cw.Write(export.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range export.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
