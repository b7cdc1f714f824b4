package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverkaik/elights/internal/api/models"
	"github.com/mverkaik/elights/internal/elgato"
)

func TestHealth(t *testing.T) {
	d := newTestDeps(t)

	w := performRequest(d.router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestStats(t *testing.T) {
	d := newTestDeps(t)
	d.registry.AddDiscovered("192.168.1.10")
	d.registry.AddDiscovered("192.168.1.11")
	d.addDevice("SN-A", "192.168.1.10", elgato.LightState{On: 1, Brightness: 50, Temperature: 200})

	w := performRequest(d.router, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ServerStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Uptime)
	assert.Greater(t, resp.GoRoutines, 0)
	assert.Equal(t, 2, resp.Discovery.Discovered)
	assert.Equal(t, 1, resp.Discovery.Resolved)
	assert.Equal(t, 1, resp.Discovery.Pending)
}
