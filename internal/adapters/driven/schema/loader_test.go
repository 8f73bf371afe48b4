package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formery-dev/formery/internal/core/domain"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeSpec(t, `
title: Event feedback
description: Tell us how it went
sections:
  - title: Logistics
    questions:
      - type: title
        title: Travel
      - type: text
        title: Where did you travel from?
        required: true
      - type: multipleChoice
        title: Transport
        options: [Car, Train, Bike]
      - type: scale
        title: Rate the venue
        low: 1
        high: 10
        highLabel: Excellent
`)

	spec, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Event feedback", spec.Title)
	require.Len(t, spec.Sections, 1)

	questions := spec.Sections[0].Questions
	require.Len(t, questions, 4)
	assert.Equal(t, domain.QuestionTitle, questions[0].Type)
	assert.True(t, questions[1].Required)
	assert.Equal(t, []string{"Car", "Train", "Bike"}, questions[2].Options)
	assert.Equal(t, 10, questions[3].High)
	assert.Equal(t, "Excellent", questions[3].HighLabel)
}

func TestLoader_Load_FlatQuestions(t *testing.T) {
	path := writeSpec(t, `
title: Quick poll
questions:
  - type: dropdown
    title: Favourite day
    options: [Monday, Friday]
`)

	spec, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.True(t, spec.Flat())
	require.Len(t, spec.Questions, 1)
	assert.Equal(t, domain.QuestionDropdown, spec.Questions[0].Type)
}

func TestLoader_Load_UnknownFieldFails(t *testing.T) {
	path := writeSpec(t, `
title: Poll
quesions:
  - type: text
    title: Oops
`)

	_, err := NewLoader().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quesions")
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeSpec(t, "")

	_, err := NewLoader().Load(path)

	assert.ErrorIs(t, err, domain.ErrInvalidSpec)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
