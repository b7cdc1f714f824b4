// Package discovery owns the shared discovery state and the
// reconciliation loop that turns discovered peer addresses into
// resolved device records.
package discovery

import (
	"maps"
	"slices"
	"sync"

	"github.com/mverkaik/elights/internal/elgato"
)

// Registry is the shared state between the protocol engine, the
// reconciler and the HTTP surface. Writer roles are fixed: the engine
// is the sole writer of the discovered set, the reconciler the sole
// writer of the resolved maps; everyone else reads snapshots. All
// access goes through one mutex.
//
// Discovered addresses are never removed: on the small closed networks
// this runs on, a light that vanishes is usually rebooting and comes
// back with the same address.
type Registry struct {
	mu sync.RWMutex

	discovered map[string]struct{}
	byAddress  map[string]elgato.DeviceInfo
	bySerial   map[string]elgato.DeviceInfo
}

// NewRegistry creates an empty registry. It lives for the whole
// process; there is no teardown.
func NewRegistry() *Registry {
	return &Registry{
		discovered: make(map[string]struct{}),
		byAddress:  make(map[string]elgato.DeviceInfo),
		bySerial:   make(map[string]elgato.DeviceInfo),
	}
}

// AddDiscovered records a peer address seen in an mDNS response.
// Returns true if the address was not known before.
func (r *Registry) AddDiscovered(addr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.discovered[addr]; ok {
		return false
	}
	r.discovered[addr] = struct{}{}
	return true
}

// Needed returns the discovered addresses that have no resolved device
// record yet, in sorted order so reconciliation visits peers
// deterministically.
func (r *Registry) Needed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var needed []string
	for addr := range r.discovered {
		if _, ok := r.byAddress[addr]; !ok {
			needed = append(needed, addr)
		}
	}
	slices.Sort(needed)
	return needed
}

// SetResolved stores a resolved device under both its address and its
// serial number.
func (r *Registry) SetResolved(info elgato.DeviceInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAddress[info.Address] = info
	r.bySerial[info.SerialNumber] = info
}

// ByAddress looks up a resolved device by address.
func (r *Registry) ByAddress(addr string) (elgato.DeviceInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.byAddress[addr]
	return info, ok
}

// BySerial looks up a resolved device by serial number.
func (r *Registry) BySerial(serial string) (elgato.DeviceInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.bySerial[serial]
	return info, ok
}

// Devices returns a snapshot of all resolved devices sorted by serial
// number.
func (r *Registry) Devices() []elgato.DeviceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := slices.Collect(maps.Values(r.bySerial))
	slices.SortFunc(devices, func(a, b elgato.DeviceInfo) int {
		switch {
		case a.SerialNumber < b.SerialNumber:
			return -1
		case a.SerialNumber > b.SerialNumber:
			return 1
		default:
			return 0
		}
	})
	return devices
}

// Counts returns the number of discovered addresses and resolved
// devices, for the stats endpoint.
func (r *Registry) Counts() (discovered, resolved int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.discovered), len(r.byAddress)
}
