package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_ValidDocument(t *testing.T) {
	path := writeTestFile(t, "query.json", validDocJSON)

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "valid\n", buf.String())
}

func TestValidateCommand_ValidDocumentJSON(t *testing.T) {
	path := writeTestFile(t, "query.json", validDocJSON)

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", path, "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Contains(t, data["formatted"], "FROM users")
}

func TestValidateCommand_RawSQLFile(t *testing.T) {
	path := writeTestFile(t, "query.sql", "SELECT name FROM users WHERE age > 21;")

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--sql", path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "valid\n", buf.String())
}

func TestValidateCommand_UnbalancedParens(t *testing.T) {
	path := writeTestFile(t, "broken.sql", "SELECT x FROM t WHERE id IN (1;")

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--sql", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed with 1 error(s)")
	assert.Contains(t, buf.String(), "invalid")
	assert.Contains(t, buf.String(), "  error: unbalanced parentheses")
}

func TestValidateCommand_WarningsStayValid(t *testing.T) {
	path := writeTestFile(t, "star.sql", "SELECT * FROM t;")

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--sql", path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "valid")
	assert.Contains(t, buf.String(), "  warning: SELECT * used")
}

func TestValidateCommand_VerboseShowsFormatted(t *testing.T) {
	path := writeTestFile(t, "query.sql", "select name from users where age > 21;")

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--sql", path, "--verbose"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "valid\n")
	assert.Contains(t, buf.String(), "SELECT name\nFROM users\nWHERE age > 21;")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "/nonexistent/query.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "validate failed")
}

func TestValidateCommand_InvalidReportJSON(t *testing.T) {
	path := writeTestFile(t, "broken.sql", "SELECT a) FROM (t;")

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--sql", path, "--format", "json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// The report still goes out as a normal payload; the exit code carries the failure.
	var resp CLIResponse
	jsonErr := json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, jsonErr)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])

	errs, ok := data["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "unbalanced parentheses", errs[0])
}
