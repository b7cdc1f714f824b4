package mdns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverkaik/elights/internal/dns"
)

func TestAnnounceOnce(t *testing.T) {
	out := &captureSender{}
	a := &Announcer{
		Out:              out,
		AdvertiseService: "_http._tcp.local",
		Instance:         "Elights Hub",
		Hostname:         "elights.local",
		HostIP:           "192.168.1.50",
		Port:             8093,
		TXT:              []string{"path=/"},
		DiscoverService:  "_elg._tcp.local",
	}

	a.announceOnce(context.Background())

	require.Len(t, out.sent, 3, "announcement, host record, ptr query")

	ann, err := dns.ParsePacket(out.sent[0])
	require.NoError(t, err)
	assert.Equal(t, dns.MDNSResponseFlags, ann.Header.Flags)
	require.Len(t, ann.Answers, 3)
	ptr := ann.Answers[0].(*dns.PTRRecord)
	assert.Equal(t, "Elights Hub._http._tcp.local", ptr.Target)
	srv := ann.Answers[1].(*dns.SRVRecord)
	assert.Equal(t, uint16(8093), srv.Port)

	host, err := dns.ParsePacket(out.sent[1])
	require.NoError(t, err)
	require.Len(t, host.Answers, 1)
	assert.Equal(t, "elights.local", host.Answers[0].Header().Name)

	query, err := dns.ParsePacket(out.sent[2])
	require.NoError(t, err)
	assert.True(t, query.Header.IsQuery())
	require.Len(t, query.Questions, 1)
	assert.Equal(t, "_elg._tcp.local", query.Questions[0].Name)
	assert.Equal(t, uint16(dns.TypePTR), query.Questions[0].Type)
}

func TestAnnounceOnce_BadConfigStillQueries(t *testing.T) {
	out := &captureSender{}
	a := &Announcer{
		Out:             out,
		DiscoverService: "_elg._tcp.local",
		// No advertise config: announcement and host record fail to
		// build, but discovery must keep going.
	}

	a.announceOnce(context.Background())

	require.Len(t, out.sent, 1)
	query, err := dns.ParsePacket(out.sent[0])
	require.NoError(t, err)
	assert.True(t, query.Header.IsQuery())
}
