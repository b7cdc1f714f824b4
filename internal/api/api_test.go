// Package api_test provides behavior tests for the API package.
package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverkaik/elights/internal/api"
	"github.com/mverkaik/elights/internal/api/models"
	"github.com/mverkaik/elights/internal/config"
	"github.com/mverkaik/elights/internal/database"
	"github.com/mverkaik/elights/internal/discovery"
	"github.com/mverkaik/elights/internal/elgato"
)

func newTestServer(t *testing.T, apiKey string) *api.Server {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{}
	cfg.API.Host = "127.0.0.1"
	cfg.API.Port = 8093
	cfg.API.APIKey = apiKey

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return api.New(cfg, discovery.NewRegistry(), store, elgato.New(), logger)
}

func TestRoutes_HealthWithoutKey(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestRoutes_APIKeyGatesEverything(t *testing.T) {
	srv := newTestServer(t, "hub-secret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	req.Header.Set("X-API-Key", "hub-secret")
	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_UnknownAPIRoute(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSPA_ServesPlaceholderIndex(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "elights")
}

func TestAddr(t *testing.T) {
	srv := newTestServer(t, "")
	assert.Equal(t, "127.0.0.1:8093", srv.Addr())
}
