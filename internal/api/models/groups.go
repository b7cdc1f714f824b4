package models

// GroupRequest creates or replaces a light group.
type GroupRequest struct {
	Serials []string `json:"serials" binding:"required"`
}

// GroupResponse describes a stored light group.
type GroupResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Serials []string `json:"serials"`
}

// GroupListResponse wraps all stored groups.
type GroupListResponse struct {
	Count  int             `json:"count"`
	Groups []GroupResponse `json:"groups"`
}

// GroupLightsResult reports the per-device outcome of a group-wide
// state change.
type GroupLightsResult struct {
	SerialNumber string `json:"serial_number"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
}

// GroupLightsResponse summarizes a group-wide state change.
type GroupLightsResponse struct {
	Name    string              `json:"name"`
	Applied int                 `json:"applied"`
	Failed  int                 `json:"failed"`
	Results []GroupLightsResult `json:"results"`
}
