// Package config provides configuration loading and validation for the
// elights hub. Configuration is a JSON file; every field has a default
// so an empty file (or none at all) yields a working instance.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Defaults applied by Validate.
const (
	DefaultDiscoverService  = "_elg._tcp.local"
	DefaultAdvertiseService = "_http._tcp.local"
	DefaultInstance         = "Elights Hub"
	DefaultHostname         = "elights.local"
	DefaultDBPath           = "elights.db"
	DefaultAPIPort          = 8093

	DefaultPollInterval      = 100 * time.Millisecond
	DefaultAnnounceInterval  = 30 * time.Second
	DefaultReconcileInterval = 500 * time.Millisecond
)

// Load reads a JSON config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfigPath picks the config path from the flag value or the
// ELIGHTS_CONFIG environment variable.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("ELIGHTS_CONFIG")
}

// Validate normalizes the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.MDNS.DiscoverService == "" {
		cfg.MDNS.DiscoverService = DefaultDiscoverService
	}
	if cfg.MDNS.AdvertiseService == "" {
		cfg.MDNS.AdvertiseService = DefaultAdvertiseService
	}
	if cfg.MDNS.Instance == "" {
		cfg.MDNS.Instance = DefaultInstance
	}
	if cfg.MDNS.Hostname == "" {
		cfg.MDNS.Hostname = DefaultHostname
	}
	if !strings.HasSuffix(strings.TrimSuffix(cfg.MDNS.Hostname, "."), ".local") {
		return errors.New("mdns.hostname must end in .local")
	}

	if _, err := cfg.PollInterval(); err != nil {
		return fmt.Errorf("mdns.poll_interval: %w", err)
	}
	if _, err := cfg.AnnounceInterval(); err != nil {
		return fmt.Errorf("mdns.announce_interval: %w", err)
	}
	if _, err := cfg.ReconcileInterval(); err != nil {
		return fmt.Errorf("mdns.reconcile_interval: %w", err)
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultDBPath
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}

	if cfg.API.Host == "" {
		cfg.API.Host = "0.0.0.0"
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = DefaultAPIPort
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	return nil
}

// PollInterval returns the parsed socket poll interval.
func (cfg *Config) PollInterval() (time.Duration, error) {
	return parseInterval(cfg.MDNS.PollInterval, DefaultPollInterval)
}

// AnnounceInterval returns the parsed announcement interval.
func (cfg *Config) AnnounceInterval() (time.Duration, error) {
	return parseInterval(cfg.MDNS.AnnounceInterval, DefaultAnnounceInterval)
}

// ReconcileInterval returns the parsed reconciliation interval.
func (cfg *Config) ReconcileInterval() (time.Duration, error) {
	return parseInterval(cfg.MDNS.ReconcileInterval, DefaultReconcileInterval)
}

func parseInterval(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.New("interval must be positive")
	}
	return d, nil
}
