package domain

import (
	"fmt"
	"strings"
)

// QuestionType discriminates the kinds of items a form spec may contain.
type QuestionType string

const (
	// QuestionText is a single-line free text answer.
	QuestionText QuestionType = "text"
	// QuestionParagraph is a multi-line free text answer.
	QuestionParagraph QuestionType = "paragraph"
	// QuestionMultipleChoice is a single-select radio group.
	QuestionMultipleChoice QuestionType = "multipleChoice"
	// QuestionCheckbox is a multi-select checkbox group.
	QuestionCheckbox QuestionType = "checkbox"
	// QuestionDropdown is a single-select dropdown.
	QuestionDropdown QuestionType = "dropdown"
	// QuestionScale is a linear scale (defaults to 1..5).
	QuestionScale QuestionType = "scale"
	// QuestionDate asks for a date.
	QuestionDate QuestionType = "date"
	// QuestionTime asks for a time of day.
	QuestionTime QuestionType = "time"
	// QuestionTitle is a display-only header. It collects no answers
	// and is never numbered.
	QuestionTitle QuestionType = "title"
)

// IsValid returns true for known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionText, QuestionParagraph, QuestionMultipleChoice,
		QuestionCheckbox, QuestionDropdown, QuestionScale,
		QuestionDate, QuestionTime, QuestionTitle:
		return true
	}
	return false
}

// IsChoice returns true for types that require an options list.
func (t QuestionType) IsChoice() bool {
	switch t {
	case QuestionMultipleChoice, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// IsInput returns true for types that collect an answer.
func (t QuestionType) IsInput() bool {
	return t != QuestionTitle
}

// Default bounds for scale questions.
const (
	DefaultScaleLow  = 1
	DefaultScaleHigh = 5
)

// Question is a single form field descriptor from the author-facing spec.
type Question struct {
	Type        QuestionType `yaml:"type"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description,omitempty"`
	Required    bool         `yaml:"required,omitempty"`

	// Options apply to choice types only.
	Options []string `yaml:"options,omitempty"`

	// Scale bounds and labels; zero bounds fall back to 1..5.
	Low       int    `yaml:"low,omitempty"`
	High      int    `yaml:"high,omitempty"`
	LowLabel  string `yaml:"lowLabel,omitempty"`
	HighLabel string `yaml:"highLabel,omitempty"`
}

// ScaleBounds returns the effective scale bounds, applying defaults
// when the spec leaves them unset.
func (q Question) ScaleBounds() (low, high int) {
	low, high = q.Low, q.High
	if low == 0 && high == 0 {
		return DefaultScaleLow, DefaultScaleHigh
	}
	return low, high
}

// Section is a named, ordered group of questions. Order is significant
// and defines numbering.
type Section struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Questions   []Question `yaml:"questions"`
}

// FormSpec is the author-facing form description. A spec holds either a
// flat question list or a list of sections, not both.
type FormSpec struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Sections    []Section  `yaml:"sections,omitempty"`
	Questions   []Question `yaml:"questions,omitempty"`
}

// Flat returns true when the spec uses a top-level question list
// instead of sections.
func (s *FormSpec) Flat() bool {
	return len(s.Sections) == 0
}

// AllQuestions returns every question in document order, flattening
// sections. Used for response column ordering.
func (s *FormSpec) AllQuestions() []Question {
	if s.Flat() {
		return s.Questions
	}
	var out []Question
	for _, sec := range s.Sections {
		out = append(out, sec.Questions...)
	}
	return out
}

// Validate checks the spec and reports every violation, not just the
// first. The returned error wraps ErrInvalidSpec.
func (s *FormSpec) Validate() error {
	var problems []string

	if strings.TrimSpace(s.Title) == "" {
		problems = append(problems, "form title is required")
	}
	if len(s.Sections) > 0 && len(s.Questions) > 0 {
		problems = append(problems, "spec must use either sections or a flat question list, not both")
	}
	if len(s.Sections) == 0 && len(s.Questions) == 0 {
		problems = append(problems, "spec has no questions")
	}

	for i, q := range s.Questions {
		problems = append(problems, validateQuestion(fmt.Sprintf("questions[%d]", i), q)...)
	}
	for i, sec := range s.Sections {
		if strings.TrimSpace(sec.Title) == "" {
			problems = append(problems, fmt.Sprintf("sections[%d]: section title is required", i))
		}
		if len(sec.Questions) == 0 {
			problems = append(problems, fmt.Sprintf("sections[%d]: section has no questions", i))
		}
		for j, q := range sec.Questions {
			problems = append(problems, validateQuestion(fmt.Sprintf("sections[%d].questions[%d]", i, j), q)...)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(problems, "; "))
}

func validateQuestion(path string, q Question) []string {
	var problems []string

	if !q.Type.IsValid() {
		problems = append(problems, fmt.Sprintf("%s: unknown question type %q", path, q.Type))
		return problems
	}
	if strings.TrimSpace(q.Title) == "" {
		problems = append(problems, fmt.Sprintf("%s: question title is required", path))
	}
	if q.Type.IsChoice() && len(q.Options) == 0 {
		problems = append(problems, fmt.Sprintf("%s: %s question requires at least one option", path, q.Type))
	}
	if !q.Type.IsChoice() && len(q.Options) > 0 {
		problems = append(problems, fmt.Sprintf("%s: options are only valid for choice questions", path))
	}
	if q.Type == QuestionScale {
		low, high := q.ScaleBounds()
		if low >= high {
			problems = append(problems, fmt.Sprintf("%s: scale low (%d) must be below high (%d)", path, low, high))
		}
	}
	if q.Type == QuestionTitle && q.Required {
		problems = append(problems, fmt.Sprintf("%s: a title item cannot be required", path))
	}

	return problems
}
