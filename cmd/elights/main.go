package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mverkaik/elights/internal/config"
	"github.com/mverkaik/elights/internal/logging"
	"github.com/mverkaik/elights/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set ELIGHTS_CONFIG)")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port (also advertised in SRV records)")
		hostname   = flag.String("hostname", "", "Override the advertised mDNS hostname")
		hostIP     = flag.String("host-ip", "", "Override the advertised IPv4 address (default: autodetect)")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *hostname != "" {
		cfg.MDNS.Hostname = *hostname
	}
	if *hostIP != "" {
		cfg.MDNS.HostIP = *hostIP
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "hub exited with error: %v\n", err)
		os.Exit(1)
	}
}
