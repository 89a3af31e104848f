package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadithya-J/time_management/internal/app"
	"github.com/Aadithya-J/time_management/internal/client"
	"github.com/Aadithya-J/time_management/internal/config"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a, err := app.New(context.Background(), config.Config{
		DBDriver:    "sqlite",
		DatabaseURL: filepath.Join(t.TempDir(), "entries.db"),
		TableName:   "time_entries",
		APIEndpoint: "https://api.example.com/prod",
		Stage:       "prod",
	})
	require.NoError(t, err)
	srv := httptest.NewServer(a.Router)
	t.Cleanup(func() {
		srv.Close()
		a.Close()
	})
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAPIFromEnv(t *testing.T) {
	t.Setenv("TIMETRACK_API", "")
	assert.Equal(t, defaultAPI, apiFromEnv())

	t.Setenv("TIMETRACK_API", "https://api.example.com/prod")
	assert.Equal(t, "https://api.example.com/prod", apiFromEnv())
}

func TestListAndDelete(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, "list", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No entries")

	created, err := client.New(srv.URL).Create(context.Background(), client.NewEntry{
		Project:   "test-project",
		Name:      "test-task",
		StartTime: "2023-01-01T10:00:00Z",
		Duration:  60,
	})
	require.NoError(t, err)

	out, err = execute(t, "list", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, created.ID)
	assert.Contains(t, out, "test-project")
	assert.Contains(t, out, "60m")

	out, err = execute(t, "list", "--json", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"start_time": "2023-01-01T10:00:00Z"`)

	out, err = execute(t, "show", created.ID, "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "`+created.ID+`"`)

	out, err = execute(t, "delete", created.ID, "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Time entry "+created.ID+" deleted successfully")
}

func TestShowMissingEntry(t *testing.T) {
	srv := newServer(t)

	_, err := execute(t, "show", "does-not-exist", "--api", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestConfigCommand(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, "config", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "endpoint: https://api.example.com/prod")
	assert.Contains(t, out, "stage:    prod")
}

func TestDeleteRequiresID(t *testing.T) {
	_, err := execute(t, "delete")
	require.Error(t, err)
}

func TestListUnreachableAPI(t *testing.T) {
	_, err := execute(t, "list", "--api", "http://127.0.0.1:1")
	require.Error(t, err)
}
