package config

// MDNSConfig contains the multicast DNS engine settings.
type MDNSConfig struct {
	// DiscoverService is the service type whose peers are collected,
	// e.g. "_elg._tcp.local".
	DiscoverService string `json:"discover_service"`

	// AdvertiseService is the service type announced for this hub.
	AdvertiseService string `json:"advertise_service"`

	// Instance is the human-readable instance name in announcements.
	Instance string `json:"instance"`

	// Hostname is the local mDNS hostname answered for, e.g.
	// "elights.local".
	Hostname string `json:"hostname"`

	// HostIP is the local IPv4 address placed in A records. Empty
	// means autodetect at startup.
	HostIP string `json:"host_ip,omitempty"`

	// PollInterval is the cadence of the socket read loop (e.g. "100ms").
	PollInterval string `json:"poll_interval"`

	// AnnounceInterval is the announcement cadence (e.g. "30s").
	AnnounceInterval string `json:"announce_interval"`

	// ReconcileInterval is the discovery reconciliation cadence (e.g. "500ms").
	ReconcileInterval string `json:"reconcile_interval"`

	TXT []string `json:"txt,omitempty"`
}

// StorageConfig contains the sqlite group store settings.
type StorageConfig struct {
	Path string `json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"`
	Structured       bool              `json:"structured"`
	StructuredFormat string            `json:"structured_format"`
	IncludePID       bool              `json:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
}

// APIConfig contains HTTP API settings. Port doubles as the port
// advertised in SRV records.
//
// Note: APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	MDNS    MDNSConfig    `json:"mdns"`
	Storage StorageConfig `json:"storage"`
	Logging LoggingConfig `json:"logging"`
	API     APIConfig     `json:"api"`
}
