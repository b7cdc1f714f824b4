package dns

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func announcementPacket() Packet {
	instance := "Key Light._elg._tcp.local"
	return Packet{
		Header: Header{Flags: MDNSResponseFlags},
		Answers: []Record{
			NewPTRRecord(NewRRHeader("_elg._tcp.local", ClassIN, 4500), instance),
			NewSRVRecord(NewFlushRRHeader(instance, ClassIN, 120), 9123, "elgato-key-light.local"),
			NewTXTRecord(NewFlushRRHeader(instance, ClassIN, 4500), []string{"md=Elgato Key Light"}),
		},
		Additionals: []Record{
			NewARecord(NewFlushRRHeader("elgato-key-light.local", ClassIN, 120), net.IPv4(192, 168, 1, 50)),
		},
	}
}

func TestPacketRoundTrip(t *testing.T) {
	b, err := announcementPacket().Marshal()
	require.NoError(t, err)

	p, err := ParsePacket(b)
	require.NoError(t, err)

	assert.True(t, p.Header.IsResponse())
	assert.True(t, p.Header.Authoritative())
	assert.Equal(t, uint16(3), p.Header.ANCount)
	assert.Equal(t, uint16(1), p.Header.ARCount)
	require.Len(t, p.Answers, 3)
	require.Len(t, p.Additionals, 1)

	ptr := p.Answers[0].(*PTRRecord)
	assert.Equal(t, "Key Light._elg._tcp.local", ptr.Target)

	srv := p.Answers[1].(*SRVRecord)
	assert.Equal(t, uint16(9123), srv.Port)

	a := p.Additionals[0].(*ARecord)
	assert.Equal(t, net.IP{192, 168, 1, 50}, a.Addr)
}

func TestMarshal_CountsDerivedFromSections(t *testing.T) {
	p := announcementPacket()
	// Bogus count fields must be ignored in favor of slice lengths.
	p.Header.ANCount = 99
	p.Header.ARCount = 99

	b, err := p.Marshal()
	require.NoError(t, err)

	got, err := ParsePacket(b)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), got.Header.ANCount)
	assert.Equal(t, uint16(1), got.Header.ARCount)
}

func TestParsePacket_CountOverrunsData(t *testing.T) {
	p := Packet{
		Header:    Header{},
		Questions: []Question{{Name: "_elg._tcp.local", Type: uint16(TypePTR), Class: uint16(ClassIN)}},
	}
	b, err := p.Marshal()
	require.NoError(t, err)

	// Claim an answer that is not present.
	b[7] = 1
	_, err = ParsePacket(b)
	assert.ErrorIs(t, err, ErrWire)
}

// Truncating a valid message at any byte must yield an error, never a
// panic or an out of bounds read.
func TestParsePacket_EveryPrefixFailsCleanly(t *testing.T) {
	b, err := announcementPacket().Marshal()
	require.NoError(t, err)

	for n := 0; n < len(b); n++ {
		_, err := ParsePacket(b[:n])
		assert.Error(t, err, "prefix of %d bytes", n)
	}
}
