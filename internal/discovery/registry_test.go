package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverkaik/elights/internal/elgato"
)

func TestAddDiscovered(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.AddDiscovered("192.168.1.10"))
	assert.False(t, r.AddDiscovered("192.168.1.10"), "duplicate must report false")
	assert.True(t, r.AddDiscovered("192.168.1.11"))

	discovered, resolved := r.Counts()
	assert.Equal(t, 2, discovered)
	assert.Zero(t, resolved)
}

func TestNeeded_DiffAgainstResolved(t *testing.T) {
	r := NewRegistry()
	r.AddDiscovered("192.168.1.11")
	r.AddDiscovered("192.168.1.10")

	assert.Equal(t, []string{"192.168.1.10", "192.168.1.11"}, r.Needed(), "sorted order")

	r.SetResolved(elgato.DeviceInfo{Address: "192.168.1.10", SerialNumber: "SN-A"})
	assert.Equal(t, []string{"192.168.1.11"}, r.Needed())

	r.SetResolved(elgato.DeviceInfo{Address: "192.168.1.11", SerialNumber: "SN-B"})
	assert.Empty(t, r.Needed())
}

func TestLookups(t *testing.T) {
	r := NewRegistry()
	info := elgato.DeviceInfo{Address: "192.168.1.10", SerialNumber: "SN-A", DisplayName: "Desk"}
	r.SetResolved(info)

	got, ok := r.ByAddress("192.168.1.10")
	require.True(t, ok)
	assert.Equal(t, info, got)

	got, ok = r.BySerial("SN-A")
	require.True(t, ok)
	assert.Equal(t, info, got)

	_, ok = r.ByAddress("192.168.1.99")
	assert.False(t, ok)
	_, ok = r.BySerial("SN-Z")
	assert.False(t, ok)
}

func TestDevices_SortedBySerial(t *testing.T) {
	r := NewRegistry()
	r.SetResolved(elgato.DeviceInfo{Address: "192.168.1.11", SerialNumber: "SN-B"})
	r.SetResolved(elgato.DeviceInfo{Address: "192.168.1.10", SerialNumber: "SN-A"})

	devices := r.Devices()
	require.Len(t, devices, 2)
	assert.Equal(t, "SN-A", devices[0].SerialNumber)
	assert.Equal(t, "SN-B", devices[1].SerialNumber)
}

func TestSetResolved_Reresolve(t *testing.T) {
	r := NewRegistry()
	r.SetResolved(elgato.DeviceInfo{Address: "192.168.1.10", SerialNumber: "SN-A", DisplayName: "Old"})
	r.SetResolved(elgato.DeviceInfo{Address: "192.168.1.10", SerialNumber: "SN-A", DisplayName: "New"})

	got, ok := r.BySerial("SN-A")
	require.True(t, ok)
	assert.Equal(t, "New", got.DisplayName)

	_, resolved := r.Counts()
	assert.Equal(t, 1, resolved)
}
