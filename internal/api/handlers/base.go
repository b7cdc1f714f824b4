// Package handlers implements the REST API endpoint handlers for elights.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Hub statistics (uptime, memory, cpu, discovery counters)
//
// Devices (discovered lights):
//   - GET /api/v1/devices - List all resolved lights
//   - GET /api/v1/devices/:serial - Get one light by serial number
//   - GET /api/v1/devices/:serial/lights - Read the light's current state
//   - PUT /api/v1/devices/:serial/lights - Set brightness and color temperature
//
// Groups (named sets of lights):
//   - GET /api/v1/groups - List all groups
//   - PUT /api/v1/groups/:name - Create or replace a group
//   - GET /api/v1/groups/:name - Get a group
//   - DELETE /api/v1/groups/:name - Delete a group
//   - PUT /api/v1/groups/:name/lights - Set state for every light in a group
//
// Authentication:
//
// All endpoints support optional API key authentication via the
// X-API-Key header. If no key is configured the API is open.
//
// @title elights Management API
// @version 1.0
// @description REST API for controlling Elgato lights discovered on the local network.
//
// @contact.name elights
// @contact.url https://github.com/mverkaik/elights
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8093
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/mverkaik/elights/internal/config"
	"github.com/mverkaik/elights/internal/database"
	"github.com/mverkaik/elights/internal/discovery"
	"github.com/mverkaik/elights/internal/elgato"
)

// LightController talks to a light's accessory HTTP API.
type LightController interface {
	Lights(ctx context.Context, addr string) (elgato.LightState, error)
	SetLights(ctx context.Context, addr string, brightness, temperature int) (elgato.LightState, error)
}

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	registry  *discovery.Registry
	store     *database.DB
	lights    LightController
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler with the given dependencies.
func New(cfg *config.Config, registry *discovery.Registry, store *database.DB, lights LightController, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		registry:  registry,
		store:     store,
		lights:    lights,
		logger:    logger,
		startTime: time.Now(),
	}
}
