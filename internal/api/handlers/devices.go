package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mverkaik/elights/internal/api/models"
	"github.com/mverkaik/elights/internal/elgato"
)

func deviceResponse(info elgato.DeviceInfo) models.DeviceResponse {
	return models.DeviceResponse{
		Address:             info.Address,
		SerialNumber:        info.SerialNumber,
		DisplayName:         info.DisplayName,
		ProductName:         info.ProductName,
		FirmwareVersion:     info.FirmwareVersion,
		FirmwareBuildNumber: info.FirmwareBuildNumber,
		MacAddress:          info.MacAddress,
	}
}

// ListDevices godoc
// @Summary List discovered lights
// @Description Returns every light that has been discovered and resolved
// @Tags devices
// @Produce json
// @Success 200 {object} models.DeviceListResponse
// @Security ApiKeyAuth
// @Router /devices [get]
func (h *Handler) ListDevices(c *gin.Context) {
	infos := h.registry.Devices()

	devices := make([]models.DeviceResponse, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, deviceResponse(info))
	}

	c.JSON(http.StatusOK, models.DeviceListResponse{
		Count:   len(devices),
		Devices: devices,
	})
}

// GetDevice godoc
// @Summary Get one light
// @Description Returns a single resolved light by serial number
// @Tags devices
// @Produce json
// @Param serial path string true "Device serial number"
// @Success 200 {object} models.DeviceResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /devices/{serial} [get]
func (h *Handler) GetDevice(c *gin.Context) {
	serial := c.Param("serial")

	info, ok := h.registry.BySerial(serial)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "device not found"})
		return
	}

	c.JSON(http.StatusOK, deviceResponse(info))
}

// GetLights godoc
// @Summary Read light state
// @Description Reads the current on/off state, brightness and color temperature
// @Tags devices
// @Produce json
// @Param serial path string true "Device serial number"
// @Success 200 {object} models.LightStateResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /devices/{serial}/lights [get]
func (h *Handler) GetLights(c *gin.Context) {
	serial := c.Param("serial")

	info, ok := h.registry.BySerial(serial)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "device not found"})
		return
	}

	state, err := h.lights.Lights(c.Request.Context(), info.Address)
	if err != nil {
		h.logger.Warn("reading light state failed", "serial", serial, "address", info.Address, "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "device unreachable"})
		return
	}

	c.JSON(http.StatusOK, lightStateResponse(state))
}

func lightStateResponse(state elgato.LightState) models.LightStateResponse {
	return models.LightStateResponse{
		On:          state.On != 0,
		Brightness:  state.Brightness,
		Temperature: state.Temperature,
	}
}

// PutLights godoc
// @Summary Set light state
// @Description Sets brightness and color temperature. Brightness 0 turns the light off.
// @Tags devices
// @Accept json
// @Produce json
// @Param serial path string true "Device serial number"
// @Param state body models.LightStateRequest true "Desired state"
// @Success 200 {object} models.LightStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /devices/{serial}/lights [put]
func (h *Handler) PutLights(c *gin.Context) {
	serial := c.Param("serial")

	var req models.LightStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	info, ok := h.registry.BySerial(serial)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "device not found"})
		return
	}

	state, err := h.lights.SetLights(c.Request.Context(), info.Address, req.Brightness, req.Temperature)
	if err != nil {
		if errors.Is(err, elgato.ErrOutOfRange) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Warn("setting light state failed", "serial", serial, "address", info.Address, "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "device unreachable"})
		return
	}

	c.JSON(http.StatusOK, lightStateResponse(state))
}
