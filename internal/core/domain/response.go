package domain

import (
	"strings"
	"time"
)

// FormRef is the local catalog record of a form this tool created or
// updated.
type FormRef struct {
	FormID       string
	Title        string
	SpecPath     string
	ResponderURI string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FormInfo is a remote listing entry, optionally annotated with the
// catalog's spec path.
type FormInfo struct {
	FormID       string
	Title        string
	WebViewLink  string
	ModifiedTime time.Time
	// SpecPath is filled from the local catalog when the form was
	// created by this tool; empty otherwise.
	SpecPath string
}

// ResponseColumn identifies one answer column of a response export, in
// form item order.
type ResponseColumn struct {
	QuestionID string
	Title      string
}

// ResponseRecord is one submitted form response. Answers are keyed by
// question ID; multi-select questions yield multiple values.
type ResponseRecord struct {
	ResponseID  string
	SubmittedAt time.Time
	Answers     map[string][]string
}

// multiValueSeparator joins multi-select answers within one CSV cell.
const multiValueSeparator = "; "

// ExportHeader returns the CSV header for the given columns. Response
// ID and submit time always come first.
func ExportHeader(columns []ResponseColumn) []string {
	header := make([]string, 0, len(columns)+2)
	header = append(header, "response_id", "submitted_at")
	for _, c := range columns {
		header = append(header, c.Title)
	}
	return header
}

// Row renders the record against the given column order. Unanswered
// questions produce empty cells.
func (r ResponseRecord) Row(columns []ResponseColumn) []string {
	row := make([]string, 0, len(columns)+2)
	row = append(row, r.ResponseID, r.SubmittedAt.UTC().Format(time.RFC3339))
	for _, c := range columns {
		row = append(row, strings.Join(r.Answers[c.QuestionID], multiValueSeparator))
	}
	return row
}

// ResponseExport is a fully assembled export, ready for a writer.
type ResponseExport struct {
	Header []string
	Rows   [][]string
}

// BuildExport assembles an export from columns and records.
func BuildExport(columns []ResponseColumn, records []ResponseRecord) *ResponseExport {
	export := &ResponseExport{
		Header: ExportHeader(columns),
		Rows:   make([][]string, 0, len(records)),
	}
	for _, rec := range records {
		export.Rows = append(export.Rows, rec.Row(columns))
	}
	return export
}
