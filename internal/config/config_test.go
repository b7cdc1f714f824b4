package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDiscoverService, cfg.MDNS.DiscoverService)
	assert.Equal(t, DefaultAdvertiseService, cfg.MDNS.AdvertiseService)
	assert.Equal(t, DefaultInstance, cfg.MDNS.Instance)
	assert.Equal(t, DefaultHostname, cfg.MDNS.Hostname)
	assert.Equal(t, DefaultDBPath, cfg.Storage.Path)
	assert.Equal(t, DefaultAPIPort, cfg.API.Port)
	assert.Equal(t, "INFO", cfg.Logging.Level)

	poll, err := cfg.PollInterval()
	require.NoError(t, err)
	assert.Equal(t, DefaultPollInterval, poll)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"mdns": {
			"hostname": "hub.local",
			"discover_service": "_elg._tcp.local",
			"announce_interval": "10s"
		},
		"api": {"port": 9000, "api_key": "secret"},
		"logging": {"level": "debug"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hub.local", cfg.MDNS.Hostname)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, "secret", cfg.API.APIKey)
	assert.Equal(t, "DEBUG", cfg.Logging.Level, "level is normalized to upper case")

	announce, err := cfg.AnnounceInterval()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, announce)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate_HostnameMustBeLocal(t *testing.T) {
	cfg := &Config{}
	cfg.MDNS.Hostname = "hub.example.com"
	assert.Error(t, cfg.Validate())

	cfg.MDNS.Hostname = "hub.local."
	assert.NoError(t, cfg.Validate(), "trailing dot is tolerated")
}

func TestValidate_BadInterval(t *testing.T) {
	cfg := &Config{}
	cfg.MDNS.PollInterval = "soon"
	assert.Error(t, cfg.Validate())

	cfg = &Config{}
	cfg.MDNS.ReconcileInterval = "-5s"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{}
	cfg.API.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("ELIGHTS_CONFIG", "/etc/elights/config.json")
	assert.Equal(t, "/tmp/override.json", ResolveConfigPath("/tmp/override.json"))
	assert.Equal(t, "/etc/elights/config.json", ResolveConfigPath(""))
}
