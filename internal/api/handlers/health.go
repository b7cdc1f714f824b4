package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mverkaik/elights/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns hub health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Hub statistics
// @Description Returns runtime statistics including memory, cpu and discovery counters
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
	}

	if h.registry != nil {
		discovered, resolved := h.registry.Counts()
		resp.Discovery = models.DiscoveryStatsResponse{
			Discovered: discovered,
			Resolved:   resolved,
			Pending:    discovered - resolved,
		}
	}

	resp.System = h.systemStats()

	c.JSON(http.StatusOK, resp)
}

// systemStats gathers host-level usage. Failures are logged and the
// section is omitted rather than failing the request.
func (h *Handler) systemStats() *models.SystemStatsResponse {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	sys := &models.SystemStatsResponse{
		ProcessAllocMB:   float64(m.Alloc) / 1024 / 1024,
		ProcessHeapSysMB: float64(m.HeapSys) / 1024 / 1024,
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("reading host memory stats failed", "error", err)
		}
		return sys
	}
	sys.MemoryUsedMB = float64(vm.Used) / 1024 / 1024
	sys.MemoryTotalMB = float64(vm.Total) / 1024 / 1024
	sys.MemoryPercent = vm.UsedPercent

	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		sys.CPUPercent = pct[0]
	}

	return sys
}
