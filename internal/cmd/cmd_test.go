package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskforce/internal/config"
)

// executeCommand runs the command tree with args and returns captured output
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// useSQLiteStore points the commands at a throwaway SQLite database
func useSQLiteStore(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", config.DriverSQLite)
	t.Setenv("DATABASE_DSN", filepath.Join(t.TempDir(), "taskforce.db"))
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "taskforce", root.Use)

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "members", "backlog", "tasks", "trigger"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestMembersAddListRemove(t *testing.T) {
	useSQLiteStore(t)

	out, err := executeCommand(t, "", "members", "add", "--name", "Alice Nguyen", "--email", "alice@example.com", "--skills", "Go")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added Alice Nguyen <alice@example.com>")

	out, err = executeCommand(t, "", "members", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Alice Nguyen")
	assert.Contains(t, out, "Active")

	_, err = executeCommand(t, "n\n", "members", "remove", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not confirmed")

	out, err = executeCommand(t, "y\n", "members", "remove", "1")
	require.NoError(t, err, out)

	out, err = executeCommand(t, "", "members", "list")
	require.NoError(t, err, out)
	assert.NotContains(t, out, "Alice Nguyen")
}

func TestMembersAddValidation(t *testing.T) {
	useSQLiteStore(t)

	_, err := executeCommand(t, "", "members", "add", "--name", "  ", "--email", "a@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full name is required")
}

func TestBacklogAddAndList(t *testing.T) {
	useSQLiteStore(t)

	out, err := executeCommand(t, "", "backlog", "add", "--description", "Design homepage", "--deadline", "2025-06-30T17:00")
	require.NoError(t, err, out)

	out, err = executeCommand(t, "", "backlog", "add", "--description", "Write docs")
	require.NoError(t, err, out)

	out, err = executeCommand(t, "", "backlog", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "30/06/2025 17:00")
	assert.Contains(t, out, "Write docs")
	assert.Less(t, strings.Index(out, "Write docs"), strings.Index(out, "Design homepage"))

	out, err = executeCommand(t, "", "backlog", "remove", "--yes", "1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Removed expected task 1")
}

func TestTasksListEmpty(t *testing.T) {
	useSQLiteStore(t)

	out, err := executeCommand(t, "", "tasks", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ASSIGNEE")
}

func TestTriggerCallsProxy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trigger-ai", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"AI Agent triggered successfully","data":{"assigned":2}}`))
	}))
	defer srv.Close()

	out, err := executeCommand(t, "", "trigger", "--server", srv.URL)
	require.NoError(t, err, out)
	assert.Contains(t, out, "AI Agent triggered successfully")
	assert.Contains(t, out, `{"assigned":2}`)
}

func TestTriggerReportsProxyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"Failed to trigger AI Agent","error":"timeout of 2m0s exceeded"}`))
	}))
	defer srv.Close()

	_, err := executeCommand(t, "", "trigger", "--server", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to trigger AI Agent")
}
