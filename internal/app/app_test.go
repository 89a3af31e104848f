package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadithya-J/time_management/internal/config"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		DBDriver:      "sqlite",
		DatabaseURL:   filepath.Join(t.TempDir(), "entries.db"),
		TableName:     "time_entries",
		APIEndpoint:   "http://localhost:3000",
		Stage:         "test",
		EventsBackend: "none",
		ServeFrontend: true,
	}
}

func TestNew_ServesAPIAndFrontend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app/app.js", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "APP_CONFIG")
}

func TestNew_UnknownEventsBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.EventsBackend = "carrier-pigeon"

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown events backend")
}

func TestNew_BadDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBDriver = "oracle"

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}
