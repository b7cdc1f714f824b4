package models

import "time"

// ServerStatsResponse contains hub runtime statistics.
type ServerStatsResponse struct {
	Uptime        string                 `json:"uptime"`
	UptimeSeconds int64                  `json:"uptime_seconds"`
	StartTime     time.Time              `json:"start_time"`
	GoRoutines    int                    `json:"goroutines"`
	NumCPU        int                    `json:"num_cpu"`
	System        *SystemStatsResponse   `json:"system,omitempty"`
	Discovery     DiscoveryStatsResponse `json:"discovery"`
}

// SystemStatsResponse contains host-level resource usage.
type SystemStatsResponse struct {
	MemoryUsedMB     float64 `json:"memory_used_mb"`
	MemoryTotalMB    float64 `json:"memory_total_mb"`
	MemoryPercent    float64 `json:"memory_percent"`
	CPUPercent       float64 `json:"cpu_percent"`
	ProcessAllocMB   float64 `json:"process_alloc_mb"`
	ProcessHeapSysMB float64 `json:"process_heap_sys_mb"`
}

// DiscoveryStatsResponse summarizes the state of device discovery.
type DiscoveryStatsResponse struct {
	Discovered int `json:"discovered"`
	Resolved   int `json:"resolved"`
	Pending    int `json:"pending"`
}
