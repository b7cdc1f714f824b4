// Package server wires the mDNS engine, the discovery reconciler, the
// announcer and the REST API together and manages their lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/mverkaik/elights/internal/api"
	"github.com/mverkaik/elights/internal/config"
	"github.com/mverkaik/elights/internal/database"
	"github.com/mverkaik/elights/internal/discovery"
	"github.com/mverkaik/elights/internal/elgato"
	"github.com/mverkaik/elights/internal/helpers"
	"github.com/mverkaik/elights/internal/mdns"
)

// Runner orchestrates hub startup, background loops, and shutdown.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a new runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts the hub with the given configuration and blocks until a
// shutdown signal (SIGINT/SIGTERM) arrives.
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the hub and blocks until ctx is cancelled or
// the API server fails.
//
// Goroutine lifecycle: spawns four long-lived goroutines, all exiting
// on context cancellation:
//  1. mDNS engine read loop (sole reader of the multicast socket)
//  2. announcer tick loop
//  3. discovery reconciler tick loop
//  4. HTTP API server
//
// A socket or database open failure is fatal. Everything after startup
// is fail-soft: loops log errors and keep running.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	ctx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	pollEvery, err := cfg.PollInterval()
	if err != nil {
		return err
	}
	announceEvery, err := cfg.AnnounceInterval()
	if err != nil {
		return err
	}
	reconcileEvery, err := cfg.ReconcileInterval()
	if err != nil {
		return err
	}

	hostIP := cfg.MDNS.HostIP
	if hostIP == "" {
		hostIP, err = detectHostIP()
		if err != nil {
			return fmt.Errorf("detecting host ip: %w", err)
		}
	}

	conn, err := mdns.Open()
	if err != nil {
		return fmt.Errorf("opening mdns socket: %w", err)
	}
	defer conn.Close()

	store, err := database.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening group store: %w", err)
	}
	defer store.Close()

	registry := discovery.NewRegistry()
	lights := elgato.New()

	engine := &mdns.Engine{
		Logger:   r.logger,
		Conn:     conn,
		Service:  cfg.MDNS.DiscoverService,
		Hostname: cfg.MDNS.Hostname,
		HostIP:   hostIP,
		Sink:     registry,
	}

	announcer := &mdns.Announcer{
		Logger:           r.logger,
		Out:              conn,
		AdvertiseService: cfg.MDNS.AdvertiseService,
		Instance:         cfg.MDNS.Instance,
		Hostname:         cfg.MDNS.Hostname,
		HostIP:           hostIP,
		Port:             helpers.ClampIntToUint16(cfg.API.Port),
		TXT:              cfg.MDNS.TXT,
		DiscoverService:  cfg.MDNS.DiscoverService,
		Interval:         announceEvery,
	}

	reconciler := &discovery.Reconciler{
		Logger:   r.logger,
		Registry: registry,
		Fetcher:  lights,
		Interval: reconcileEvery,
	}

	apiServer := api.New(cfg, registry, store, lights, r.logger)

	r.logStartup(cfg, hostIP, apiServer.Addr())

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); engine.Run(ctx, pollEvery) }()
	go func() { defer wg.Done(); announcer.Run(ctx) }()
	go func() { defer wg.Done(); reconciler.Run(ctx) }()

	apiErr := make(chan error, 1)
	go func() { apiErr <- apiServer.ListenAndServe() }()

	var runErr error
	select {
	case <-ctx.Done():
		// shutdown requested via signal
	case err := <-apiErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("api server: %w", err)
		}
		cancelRun()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil && r.logger != nil {
		r.logger.Warn("api shutdown failed", "err", err)
	}

	wg.Wait()
	return runErr
}

// detectHostIP finds the local IPv4 used to reach the multicast group.
// The connection is never written to; connecting a UDP socket only
// selects the outbound interface.
func detectHostIP() (string, error) {
	c, err := net.Dial("udp4", net.JoinHostPort(mdns.GroupAddr, strconv.Itoa(mdns.Port)))
	if err != nil {
		return "", err
	}
	defer c.Close()

	addr, ok := c.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP.To4() == nil {
		return "", errors.New("no local ipv4 address")
	}
	return addr.IP.To4().String(), nil
}

func (r *Runner) logStartup(cfg *config.Config, hostIP, apiAddr string) {
	if r.logger != nil {
		r.logger.Info("elights hub starting",
			"hostname", cfg.MDNS.Hostname,
			"host_ip", hostIP,
			"discover", cfg.MDNS.DiscoverService,
			"advertise", cfg.MDNS.AdvertiseService,
			"api_addr", apiAddr,
		)
	}
}
