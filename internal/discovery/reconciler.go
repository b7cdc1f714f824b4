package discovery

import (
	"context"
	"log/slog"
	"time"

	"github.com/mverkaik/elights/internal/elgato"
)

// InfoFetcher resolves a peer address into device identity.
// *elgato.Client implements it.
type InfoFetcher interface {
	AccessoryInfo(ctx context.Context, addr string) (elgato.DeviceInfo, error)
}

// Reconciler periodically diffs the discovered addresses against the
// resolved devices and fetches accessory info for every address still
// missing. An unreachable peer is simply retried on the next cycle —
// there is no attempt cap, which is acceptable on a small network of
// trusted devices but does mean a dead address is probed forever.
type Reconciler struct {
	Logger   *slog.Logger
	Registry *Registry
	Fetcher  InfoFetcher
	Interval time.Duration
}

// Run reconciles on every Interval tick until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.ReconcileOnce(ctx)
		}
	}
}

// ReconcileOnce performs one diff-and-fetch pass. Exported so tests
// can drive the state machine without timers.
func (r *Reconciler) ReconcileOnce(ctx context.Context) {
	needed := r.Registry.Needed()
	if len(needed) == 0 {
		return
	}
	if r.Logger != nil {
		r.Logger.Info("resolving new peers", "count", len(needed))
	}

	for _, addr := range needed {
		if ctx.Err() != nil {
			return
		}

		info, err := r.Fetcher.AccessoryInfo(ctx, addr)
		if err != nil {
			// Leave the address unresolved; the next cycle retries it.
			if r.Logger != nil {
				r.Logger.Warn("peer info fetch failed", "addr", addr, "err", err)
			}
			continue
		}

		r.Registry.SetResolved(info)
		if r.Logger != nil {
			r.Logger.Info("resolved device",
				"addr", addr,
				"serial", info.SerialNumber,
				"product", info.ProductName,
				"name", info.DisplayName,
			)
		}
	}
}
