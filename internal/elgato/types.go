// Package elgato is a client for the REST API that Elgato key lights
// expose on port 9123. It covers the two resources the hub needs:
// accessory-info (device identity) and lights (on/brightness/
// temperature of the first light element).
package elgato

// DeviceInfo is the identity a light reports on
// GET /elgato/accessory-info, plus the address it was fetched from.
type DeviceInfo struct {
	Address             string `json:"ip"`
	ProductName         string `json:"productName"`
	HardwareBoardType   int    `json:"hardwareBoardType"`
	HardwareRevision    string `json:"hardwareRevision"`
	MacAddress          string `json:"macAddress"`
	FirmwareBuildNumber int    `json:"firmwareBuildNumber"`
	FirmwareVersion     string `json:"firmwareVersion"`
	SerialNumber        string `json:"serialNumber"`
	DisplayName         string `json:"displayName"`
}

// LightState is the state of a single light element. On is 0 or 1 on
// the wire; Brightness is 0-100, Temperature 143-344 (mireds).
type LightState struct {
	On          int `json:"on"`
	Brightness  int `json:"brightness"`
	Temperature int `json:"temperature"`
}

// lightsPayload is the request and response envelope of
// /elgato/lights. The lights array always has one element on the
// devices this hub targets.
type lightsPayload struct {
	NumberOfLights int          `json:"numberOfLights"`
	Lights         []LightState `json:"lights"`
}

// displayNamePayload is the body of PUT /elgato/accessory-info.
type displayNamePayload struct {
	DisplayName string `json:"displayName"`
}
