package domain

// FormPlan is a FormSpec with computed titles, ready to push to the
// forms provider. Flat specs produce a single section without a page
// break, matching the provider's implicit first page.
type FormPlan struct {
	Title       string
	Description string
	Sections    []PlannedSection
}

// PlannedSection is one page of the planned form.
type PlannedSection struct {
	// Title is the computed (possibly numbered) section title. Empty
	// for the implicit section of a flat spec.
	Title       string
	Description string
	// Break is true when a page break precedes this section's
	// questions. The first page never gets one.
	Break     bool
	Questions []PlannedQuestion
}

// PlannedQuestion carries a question together with its computed title.
type PlannedQuestion struct {
	Question Question
	Title    string
}

// Plan computes the push plan for a spec. When number is true, section
// and question titles are run through the numbering engine; otherwise
// raw titles are used as-is.
func (s *FormSpec) Plan(number bool) *FormPlan {
	plan := &FormPlan{
		Title:       s.Title,
		Description: s.Description,
	}

	if s.Flat() {
		titles := rawTitles(s.Questions)
		if number {
			titles = NumberFlatQuestions(s.Questions)
		}
		plan.Sections = []PlannedSection{{
			Questions: zipQuestions(s.Questions, titles),
		}}
		return plan
	}

	numbered := NumberSections(s.Sections)
	for i, sec := range s.Sections {
		title := sec.Title
		titles := rawTitles(sec.Questions)
		if number {
			title = numbered[i].Title
			titles = numbered[i].QuestionTitles
		}
		plan.Sections = append(plan.Sections, PlannedSection{
			Title:       title,
			Description: sec.Description,
			Break:       i > 0,
			Questions:   zipQuestions(sec.Questions, titles),
		})
	}
	return plan
}

func rawTitles(questions []Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Title)
	}
	return out
}

func zipQuestions(questions []Question, titles []string) []PlannedQuestion {
	out := make([]PlannedQuestion, 0, len(questions))
	for i, q := range questions {
		out = append(out, PlannedQuestion{Question: q, Title: titles[i]})
	}
	return out
}
