package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formery-dev/formery/internal/core/domain"
)

func TestListCmd_Use(t *testing.T) {
	assert.Equal(t, "list", listCmd.Use)
}

func TestListCmd_TableOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Test Survey")
	assert.Contains(t, buf.String(), "form-1")
	assert.Contains(t, buf.String(), "survey.yaml")
	assert.Contains(t, buf.String(), "Untracked Form")
}

func TestListCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		listJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"FormID\"")
	assert.Contains(t, buf.String(), "\"form-1\"")
}

func TestOutputFormsTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputFormsTable(rootCmd, []domain.FormInfo{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No forms found")
}

func TestListCmd_ServiceError(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.err = errMock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list forms")
}
