package driven

import "github.com/formery-dev/formery/internal/core/domain"

// ResponseWriter serialises a response export.
type ResponseWriter interface {
	// Write emits the full export (header plus rows).
	Write(export *domain.ResponseExport) error
}
