package domain

import (
	"fmt"
	"regexp"
)

// alreadyNumbered recognises titles that carry a numbering prefix:
//
//	"Section 1 — ..."   keyword, whitespace, digit
//	"Q 2 — ..."         keyword, whitespace, digit (also matches "Q 1.1 — ...")
//	"1. ..." / "2) ..." digits, "." or ")", whitespace
//
// The match is anchored at the start of the string and the keywords are
// case-insensitive. Numbers appearing mid-string never match.
var alreadyNumbered = regexp.MustCompile(`^(?i:section|q)\s+\d|^\d+[.)]\s`)

// IsNumbered reports whether title already begins with a recognisable
// numbering prefix. Re-numbering such a title would double-number it,
// so the prefixer leaves it untouched.
func IsNumbered(title string) bool {
	return alreadyNumbered.MatchString(title)
}

// NumberTitle returns prefix + title, or title unchanged when it is
// already numbered. Total over all string inputs.
func NumberTitle(prefix, title string) string {
	if IsNumbered(title) {
		return title
	}
	return prefix + title
}

// NumberedSection pairs a computed section title with the computed
// titles of its questions, in input order.
type NumberedSection struct {
	Title          string
	QuestionTitles []string
}

// NumberSections numbers an ordered list of sections. Section indices
// are 1-based; each section's questions restart at 1 and use the
// compound "Q i.n — " prefix. Inputs are never mutated.
func NumberSections(sections []Section) []NumberedSection {
	out := make([]NumberedSection, 0, len(sections))
	for i, sec := range sections {
		idx := i + 1
		out = append(out, NumberedSection{
			Title:          NumberTitle(fmt.Sprintf("Section %d — ", idx), sec.Title),
			QuestionTitles: numberQuestions(sec.Questions, idx),
		})
	}
	return out
}

// NumberFlatQuestions numbers a non-sectioned question list with the
// plain "Q n — " prefix.
func NumberFlatQuestions(questions []Question) []string {
	return numberQuestions(questions, 0)
}

// numberQuestions numbers one question list. A sectionIndex of 0 means
// flat numbering. Title items pass through unchanged and do not consume
// a counter slot; the output has exactly one entry per input question.
func numberQuestions(questions []Question, sectionIndex int) []string {
	out := make([]string, 0, len(questions))
	counter := 1
	for _, q := range questions {
		if q.Type == QuestionTitle {
			out = append(out, q.Title)
			continue
		}
		var prefix string
		if sectionIndex > 0 {
			prefix = fmt.Sprintf("Q %d.%d — ", sectionIndex, counter)
		} else {
			prefix = fmt.Sprintf("Q %d — ", counter)
		}
		out = append(out, NumberTitle(prefix, q.Title))
		counter++
	}
	return out
}
