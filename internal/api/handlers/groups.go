package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mverkaik/elights/internal/api/models"
	"github.com/mverkaik/elights/internal/database"
	"github.com/mverkaik/elights/internal/elgato"
)

func groupResponse(g database.Group) models.GroupResponse {
	return models.GroupResponse{ID: g.ID, Name: g.Name, Serials: g.Serials}
}

// ListGroups godoc
// @Summary List light groups
// @Description Returns every stored light group
// @Tags groups
// @Produce json
// @Success 200 {object} models.GroupListResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /groups [get]
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.store.ListGroups()
	if err != nil {
		h.logger.Error("listing groups failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "listing groups failed"})
		return
	}

	out := make([]models.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupResponse(g))
	}

	c.JSON(http.StatusOK, models.GroupListResponse{Count: len(out), Groups: out})
}

// PutGroup godoc
// @Summary Create or replace a group
// @Description Stores a named set of light serial numbers, replacing any existing group with that name
// @Tags groups
// @Accept json
// @Produce json
// @Param name path string true "Group name"
// @Param group body models.GroupRequest true "Group members"
// @Success 200 {object} models.GroupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /groups/{name} [put]
func (h *Handler) PutGroup(c *gin.Context) {
	name := c.Param("name")

	var req models.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if len(req.Serials) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "group needs at least one serial"})
		return
	}

	g, err := h.store.SaveGroup(name, req.Serials)
	if err != nil {
		h.logger.Error("saving group failed", "group", name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "saving group failed"})
		return
	}

	c.JSON(http.StatusOK, groupResponse(g))
}

// GetGroup godoc
// @Summary Get a group
// @Description Returns one stored light group by name
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} models.GroupResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /groups/{name} [get]
func (h *Handler) GetGroup(c *gin.Context) {
	name := c.Param("name")

	g, err := h.store.GetGroup(name)
	if errors.Is(err, database.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "group not found"})
		return
	}
	if err != nil {
		h.logger.Error("loading group failed", "group", name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "loading group failed"})
		return
	}

	c.JSON(http.StatusOK, groupResponse(g))
}

// DeleteGroup godoc
// @Summary Delete a group
// @Description Removes a stored light group
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /groups/{name} [delete]
func (h *Handler) DeleteGroup(c *gin.Context) {
	name := c.Param("name")

	err := h.store.DeleteGroup(name)
	if errors.Is(err, database.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "group not found"})
		return
	}
	if err != nil {
		h.logger.Error("deleting group failed", "group", name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "deleting group failed"})
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}

// PutGroupLights godoc
// @Summary Set state for a whole group
// @Description Applies brightness and color temperature to every light in the group. Lights that are not resolved yet or unreachable are reported per entry.
// @Tags groups
// @Accept json
// @Produce json
// @Param name path string true "Group name"
// @Param state body models.LightStateRequest true "Desired state"
// @Success 200 {object} models.GroupLightsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /groups/{name}/lights [put]
func (h *Handler) PutGroupLights(c *gin.Context) {
	name := c.Param("name")

	var req models.LightStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	g, err := h.store.GetGroup(name)
	if errors.Is(err, database.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "group not found"})
		return
	}
	if err != nil {
		h.logger.Error("loading group failed", "group", name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "loading group failed"})
		return
	}

	resp := models.GroupLightsResponse{Name: name}
	for _, serial := range g.Serials {
		result := models.GroupLightsResult{SerialNumber: serial}

		info, ok := h.registry.BySerial(serial)
		if !ok {
			result.Error = "device not resolved"
		} else if _, err := h.lights.SetLights(c.Request.Context(), info.Address, req.Brightness, req.Temperature); err != nil {
			if errors.Is(err, elgato.ErrOutOfRange) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
				return
			}
			h.logger.Warn("setting group light failed", "group", name, "serial", serial, "error", err)
			result.Error = "device unreachable"
		} else {
			result.OK = true
		}

		if result.OK {
			resp.Applied++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	c.JSON(http.StatusOK, resp)
}
