// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mverkaik/elights/internal/api/handlers"
	"github.com/mverkaik/elights/internal/config"
	"github.com/mverkaik/elights/internal/database"
	"github.com/mverkaik/elights/internal/discovery"
	"github.com/mverkaik/elights/internal/elgato"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeLights is a LightController backed by an in-memory state map.
// Addresses absent from the map behave like unreachable devices.
type fakeLights struct {
	states map[string]elgato.LightState
	calls  []string
}

func (f *fakeLights) Lights(_ context.Context, addr string) (elgato.LightState, error) {
	state, ok := f.states[addr]
	if !ok {
		return elgato.LightState{}, errors.New("connection refused")
	}
	return state, nil
}

func (f *fakeLights) SetLights(_ context.Context, addr string, brightness, temperature int) (elgato.LightState, error) {
	f.calls = append(f.calls, addr)
	if brightness < elgato.MinBrightness || brightness > elgato.MaxBrightness {
		return elgato.LightState{}, elgato.ErrOutOfRange
	}
	if temperature != 0 && (temperature < elgato.MinTemperature || temperature > elgato.MaxTemperature) {
		return elgato.LightState{}, elgato.ErrOutOfRange
	}
	if _, ok := f.states[addr]; !ok {
		return elgato.LightState{}, errors.New("connection refused")
	}
	state := elgato.LightState{Brightness: brightness, Temperature: temperature}
	if brightness > 0 {
		state.On = 1
	}
	f.states[addr] = state
	return state, nil
}

type testDeps struct {
	registry *discovery.Registry
	store    *database.DB
	lights   *fakeLights
	router   *gin.Engine
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	registry := discovery.NewRegistry()
	lights := &fakeLights{states: map[string]elgato.LightState{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handlers.New(&config.Config{}, registry, store, lights, logger)

	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/stats", h.Stats)
	router.GET("/devices", h.ListDevices)
	router.GET("/devices/:serial", h.GetDevice)
	router.GET("/devices/:serial/lights", h.GetLights)
	router.PUT("/devices/:serial/lights", h.PutLights)
	router.GET("/groups", h.ListGroups)
	router.GET("/groups/:name", h.GetGroup)
	router.PUT("/groups/:name", h.PutGroup)
	router.DELETE("/groups/:name", h.DeleteGroup)
	router.PUT("/groups/:name/lights", h.PutGroupLights)

	return &testDeps{registry: registry, store: store, lights: lights, router: router}
}

// addDevice registers a resolved device with a reachable fake light.
func (d *testDeps) addDevice(serial, addr string, state elgato.LightState) {
	d.registry.AddDiscovered(addr)
	d.registry.SetResolved(elgato.DeviceInfo{
		Address:      addr,
		SerialNumber: serial,
		DisplayName:  "Light " + serial,
		ProductName:  "Elgato Key Light",
	})
	d.lights.states[addr] = state
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
