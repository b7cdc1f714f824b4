package mdns

import (
	"context"
	"log/slog"
	"time"
)

// Announcer periodically multicasts the local service presence: a full
// PTR/SRV/TXT/A announcement, a standalone host A record, and a PTR
// query for the service being discovered so that peers re-announce
// themselves without waiting out their own timers.
type Announcer struct {
	Logger *slog.Logger
	Out    Sender

	AdvertiseService string // service type announced, e.g. "_http._tcp.local"
	Instance         string // instance name, e.g. "Elights Hub"
	Hostname         string
	HostIP           string
	Port             uint16 // advertised HTTP port
	TXT              []string

	DiscoverService string // service type queried for, e.g. "_elg._tcp.local"

	Interval time.Duration
}

// Run announces immediately and then on every Interval tick until ctx
// is cancelled. Individual send failures are logged and retried by the
// next cycle; nothing here is fatal.
func (a *Announcer) Run(ctx context.Context) {
	a.announceOnce(ctx)

	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.announceOnce(ctx)
		}
	}
}

func (a *Announcer) announceOnce(ctx context.Context) {
	if a.Logger != nil {
		a.Logger.Debug("announcing service",
			"service", a.AdvertiseService,
			"instance", a.Instance,
			"host", a.Hostname,
		)
	}

	if b, err := BuildAnnouncement(a.AdvertiseService, a.Instance, a.Hostname, a.HostIP, a.Port, a.TXT); err != nil {
		a.logSendError(ctx, "announcement", err)
	} else if _, err := a.Out.SendMulticast(b); err != nil {
		a.logSendError(ctx, "announcement", err)
	}

	if b, err := BuildHostResponse(a.Hostname, a.HostIP); err != nil {
		a.logSendError(ctx, "host record", err)
	} else if _, err := a.Out.SendMulticast(b); err != nil {
		a.logSendError(ctx, "host record", err)
	}

	if b, err := BuildPTRQuery(a.DiscoverService); err != nil {
		a.logSendError(ctx, "ptr query", err)
	} else if _, err := a.Out.SendMulticast(b); err != nil {
		a.logSendError(ctx, "ptr query", err)
	}
}

func (a *Announcer) logSendError(ctx context.Context, what string, err error) {
	if a.Logger != nil {
		a.Logger.WarnContext(ctx, "mdns send failed", "what", what, "err", err)
	}
}
