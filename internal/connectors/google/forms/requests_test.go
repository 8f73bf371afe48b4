package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formery-dev/formery/internal/core/domain"
)

func sectionedPlan() *domain.FormPlan {
	return &domain.FormPlan{
		Title:       "Survey",
		Description: "desc",
		Sections: []domain.PlannedSection{
			{
				Title: "Section 1 — Logistics",
				Questions: []domain.PlannedQuestion{
					{
						Question: domain.Question{Type: domain.QuestionText, Title: "Where from?", Required: true},
						Title:    "Q 1.1 — Where from?",
					},
				},
			},
			{
				Title: "Section 2 — Feedback",
				Break: true,
				Questions: []domain.PlannedQuestion{
					{
						Question: domain.Question{Type: domain.QuestionParagraph, Title: "Anything else?"},
						Title:    "Q 2.1 — Anything else?",
					},
				},
			},
		},
	}
}

func TestBuildRequests_Ordering(t *testing.T) {
	requests := buildRequests(sectionedPlan())

	// info, first-section text item, question, page break, question
	require.Len(t, requests, 5)

	info := requests[0].UpdateFormInfo
	require.NotNil(t, info)
	assert.Equal(t, "Survey", info.Info.Title)
	assert.Equal(t, "desc", info.Info.Description)
	assert.Equal(t, "title,description", info.UpdateMask)

	// Items carry consecutive locations starting at 0.
	for i, req := range requests[1:] {
		require.NotNil(t, req.CreateItem, "request %d", i+1)
		assert.Equal(t, int64(i), req.CreateItem.Location.Index)
		assert.Contains(t, req.CreateItem.Location.ForceSendFields, "Index")
	}

	// The first section has no page break, so its title becomes a
	// display text item.
	first := requests[1].CreateItem.Item
	assert.Equal(t, "Section 1 — Logistics", first.Title)
	require.NotNil(t, first.TextItem)
	assert.Nil(t, first.PageBreakItem)

	q1 := requests[2].CreateItem.Item
	assert.Equal(t, "Q 1.1 — Where from?", q1.Title)
	require.NotNil(t, q1.QuestionItem)
	assert.True(t, q1.QuestionItem.Question.Required)
	require.NotNil(t, q1.QuestionItem.Question.TextQuestion)
	assert.False(t, q1.QuestionItem.Question.TextQuestion.Paragraph)

	brk := requests[3].CreateItem.Item
	assert.Equal(t, "Section 2 — Feedback", brk.Title)
	require.NotNil(t, brk.PageBreakItem)

	q2 := requests[4].CreateItem.Item
	require.NotNil(t, q2.QuestionItem.Question.TextQuestion)
	assert.True(t, q2.QuestionItem.Question.TextQuestion.Paragraph)
}

func TestBuildItemRequests_FlatPlanHasNoHeader(t *testing.T) {
	plan := &domain.FormPlan{
		Title: "Poll",
		Sections: []domain.PlannedSection{{
			Questions: []domain.PlannedQuestion{
				{Question: domain.Question{Type: domain.QuestionText, Title: "q"}, Title: "Q 1 — q"},
			},
		}},
	}

	requests := buildItemRequests(plan)

	require.Len(t, requests, 1)
	assert.NotNil(t, requests[0].CreateItem.Item.QuestionItem)
}

func TestQuestionItem_Types(t *testing.T) {
	t.Run("title item is display only", func(t *testing.T) {
		item := questionItem(domain.PlannedQuestion{
			Question: domain.Question{Type: domain.QuestionTitle, Title: "Header", Description: "d"},
			Title:    "Header",
		})

		require.NotNil(t, item.TextItem)
		assert.Nil(t, item.QuestionItem)
		assert.Equal(t, "d", item.Description)
	})

	t.Run("choice variants", func(t *testing.T) {
		tests := []struct {
			qtype domain.QuestionType
			want  string
		}{
			{domain.QuestionMultipleChoice, choiceRadio},
			{domain.QuestionCheckbox, choiceCheckbox},
			{domain.QuestionDropdown, choiceDropdown},
		}
		for _, tt := range tests {
			item := questionItem(domain.PlannedQuestion{
				Question: domain.Question{Type: tt.qtype, Title: "Pick", Options: []string{"A", "B"}},
				Title:    "Q 1 — Pick",
			})

			cq := item.QuestionItem.Question.ChoiceQuestion
			require.NotNil(t, cq, "type %s", tt.qtype)
			assert.Equal(t, tt.want, cq.Type)
			require.Len(t, cq.Options, 2)
			assert.Equal(t, "A", cq.Options[0].Value)
		}
	})

	t.Run("scale applies default bounds", func(t *testing.T) {
		item := questionItem(domain.PlannedQuestion{
			Question: domain.Question{Type: domain.QuestionScale, Title: "Rate", HighLabel: "Great"},
			Title:    "Q 1 — Rate",
		})

		sq := item.QuestionItem.Question.ScaleQuestion
		require.NotNil(t, sq)
		assert.Equal(t, int64(1), sq.Low)
		assert.Equal(t, int64(5), sq.High)
		assert.Equal(t, "Great", sq.HighLabel)
		assert.Contains(t, sq.ForceSendFields, "Low")
	})

	t.Run("date and time", func(t *testing.T) {
		date := questionItem(domain.PlannedQuestion{
			Question: domain.Question{Type: domain.QuestionDate, Title: "When"},
			Title:    "Q 1 — When",
		})
		assert.NotNil(t, date.QuestionItem.Question.DateQuestion)

		tm := questionItem(domain.PlannedQuestion{
			Question: domain.Question{Type: domain.QuestionTime, Title: "What time"},
			Title:    "Q 2 — What time",
		})
		assert.NotNil(t, tm.QuestionItem.Question.TimeQuestion)
	})
}

func TestBuildDeleteItemRequests_DescendingOrder(t *testing.T) {
	requests := buildDeleteItemRequests(3)

	require.Len(t, requests, 3)
	assert.Equal(t, int64(2), requests[0].DeleteItem.Location.Index)
	assert.Equal(t, int64(1), requests[1].DeleteItem.Location.Index)
	assert.Equal(t, int64(0), requests[2].DeleteItem.Location.Index)
	assert.Contains(t, requests[2].DeleteItem.Location.ForceSendFields, "Index")
}

func TestBuildDeleteItemRequests_Empty(t *testing.T) {
	assert.Empty(t, buildDeleteItemRequests(0))
}
