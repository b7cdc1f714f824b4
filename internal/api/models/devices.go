package models

// DeviceResponse describes a discovered and resolved light.
type DeviceResponse struct {
	Address             string `json:"address"`
	SerialNumber        string `json:"serial_number"`
	DisplayName         string `json:"display_name"`
	ProductName         string `json:"product_name"`
	FirmwareVersion     string `json:"firmware_version"`
	FirmwareBuildNumber int    `json:"firmware_build_number"`
	MacAddress          string `json:"mac_address"`
}

// DeviceListResponse wraps the full device inventory.
type DeviceListResponse struct {
	Count   int              `json:"count"`
	Devices []DeviceResponse `json:"devices"`
}

// LightStateResponse reports the current state of a light.
type LightStateResponse struct {
	On          bool `json:"on"`
	Brightness  int  `json:"brightness"`
	Temperature int  `json:"temperature"`
}

// LightStateRequest sets the state of a light. Brightness 0 turns the
// light off. Temperature 0 leaves the color temperature unchanged.
type LightStateRequest struct {
	Brightness  int `json:"brightness" binding:"min=0,max=100"`
	Temperature int `json:"temperature"`
}
