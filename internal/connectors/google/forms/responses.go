package forms

import (
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"

	"github.com/formery-dev/formery/internal/core/domain"
)

// fileToFormInfo converts a Drive file entry to a listing record.
func fileToFormInfo(f *drive.File) domain.FormInfo {
	modified, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return domain.FormInfo{
		FormID:       f.Id,
		Title:        f.Name,
		WebViewLink:  f.WebViewLink,
		ModifiedTime: modified,
	}
}

// responseColumns extracts answer columns from the form's items, in
// item order. Display items (page breaks, text headers) carry no
// question and produce no column.
func responseColumns(form *forms.Form) []domain.ResponseColumn {
	var columns []domain.ResponseColumn
	for _, item := range form.Items {
		if item.QuestionItem == nil || item.QuestionItem.Question == nil {
			continue
		}
		columns = append(columns, domain.ResponseColumn{
			QuestionID: item.QuestionItem.Question.QuestionId,
			Title:      item.Title,
		})
	}
	return columns
}

// toRecord flattens one API response into a domain record. Only text
// answers are exported; every Forms answer kind (choices, scale, date)
// surfaces a text rendering there.
func toRecord(r *forms.FormResponse) domain.ResponseRecord {
	answers := make(map[string][]string, len(r.Answers))
	for questionID, answer := range r.Answers {
		if answer.TextAnswers == nil {
			continue
		}
		values := make([]string, 0, len(answer.TextAnswers.Answers))
		for _, v := range answer.TextAnswers.Answers {
			values = append(values, v.Value)
		}
		answers[questionID] = values
	}

	submitted, _ := time.Parse(time.RFC3339, r.LastSubmittedTime)
	return domain.ResponseRecord{
		ResponseID:  r.ResponseId,
		SubmittedAt: submitted,
		Answers:     answers,
	}
}
