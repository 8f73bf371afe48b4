package forms

import (
	"google.golang.org/api/forms/v1"

	"github.com/formery-dev/formery/internal/core/domain"
)

// Choice question type strings expected by the Forms API.
const (
	choiceRadio    = "RADIO"
	choiceCheckbox = "CHECKBOX"
	choiceDropdown = "DROP_DOWN"
)

// buildRequests assembles the full batch for a freshly created form:
// form info first, then every item in document order.
func buildRequests(plan *domain.FormPlan) []*forms.Request {
	requests := buildUpdateInfoRequest(plan)
	return append(requests, buildItemRequests(plan)...)
}

// buildUpdateInfoRequest carries the description. The title is set by
// the Create call itself, but updates need it re-sent too.
func buildUpdateInfoRequest(plan *domain.FormPlan) []*forms.Request {
	if plan.Description == "" && plan.Title == "" {
		return nil
	}
	return []*forms.Request{{
		UpdateFormInfo: &forms.UpdateFormInfoRequest{
			Info: &forms.Info{
				Title:       plan.Title,
				Description: plan.Description,
			},
			UpdateMask: "title,description",
		},
	}}
}

// buildDeleteItemRequests deletes n existing items, highest index
// first so earlier deletions do not shift later locations.
func buildDeleteItemRequests(n int) []*forms.Request {
	requests := make([]*forms.Request, 0, n)
	for i := n - 1; i >= 0; i-- {
		requests = append(requests, &forms.Request{
			DeleteItem: &forms.DeleteItemRequest{
				Location: location(int64(i)),
			},
		})
	}
	return requests
}

// buildItemRequests renders the plan's sections into ordered CreateItem
// requests. Sections after the first are preceded by a page break that
// carries the section title; the first section's title (if any) becomes
// a display text item because the implicit first page cannot be titled.
func buildItemRequests(plan *domain.FormPlan) []*forms.Request {
	var requests []*forms.Request
	index := int64(0)

	appendItem := func(item *forms.Item) {
		requests = append(requests, &forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item:     item,
				Location: location(index),
			},
		})
		index++
	}

	for _, sec := range plan.Sections {
		switch {
		case sec.Break:
			appendItem(&forms.Item{
				Title:         sec.Title,
				Description:   sec.Description,
				PageBreakItem: &forms.PageBreakItem{},
			})
		case sec.Title != "":
			appendItem(&forms.Item{
				Title:       sec.Title,
				Description: sec.Description,
				TextItem:    &forms.TextItem{},
			})
		}

		for _, pq := range sec.Questions {
			appendItem(questionItem(pq))
		}
	}

	return requests
}

// location builds an item location. Index zero must be force-sent or
// the JSON encoder drops it and the API rejects the request.
func location(index int64) *forms.Location {
	return &forms.Location{
		Index:           index,
		ForceSendFields: []string{"Index"},
	}
}

// questionItem maps one planned question to a Forms item.
func questionItem(pq domain.PlannedQuestion) *forms.Item {
	q := pq.Question
	item := &forms.Item{
		Title:       pq.Title,
		Description: q.Description,
	}

	if q.Type == domain.QuestionTitle {
		item.TextItem = &forms.TextItem{}
		return item
	}

	question := &forms.Question{Required: q.Required}
	switch q.Type {
	case domain.QuestionText:
		question.TextQuestion = &forms.TextQuestion{}
	case domain.QuestionParagraph:
		question.TextQuestion = &forms.TextQuestion{Paragraph: true}
	case domain.QuestionMultipleChoice:
		question.ChoiceQuestion = choiceQuestion(choiceRadio, q.Options)
	case domain.QuestionCheckbox:
		question.ChoiceQuestion = choiceQuestion(choiceCheckbox, q.Options)
	case domain.QuestionDropdown:
		question.ChoiceQuestion = choiceQuestion(choiceDropdown, q.Options)
	case domain.QuestionScale:
		low, high := q.ScaleBounds()
		question.ScaleQuestion = &forms.ScaleQuestion{
			Low:             int64(low),
			High:            int64(high),
			LowLabel:        q.LowLabel,
			HighLabel:       q.HighLabel,
			ForceSendFields: []string{"Low"},
		}
	case domain.QuestionDate:
		question.DateQuestion = &forms.DateQuestion{}
	case domain.QuestionTime:
		question.TimeQuestion = &forms.TimeQuestion{}
	}

	item.QuestionItem = &forms.QuestionItem{Question: question}
	return item
}

func choiceQuestion(choiceType string, options []string) *forms.ChoiceQuestion {
	opts := make([]*forms.Option, 0, len(options))
	for _, o := range options {
		opts = append(opts, &forms.Option{Value: o})
	}
	return &forms.ChoiceQuestion{
		Type:    choiceType,
		Options: opts,
	}
}
