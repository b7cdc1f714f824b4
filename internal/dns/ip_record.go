package dns

import (
	"fmt"
	"net"
)

// ARecord is a DNS A record holding an IPv4 address. IPv6 is out of
// scope for this engine, so unlike general-purpose codecs the type is
// fixed to A and the address must be four bytes.
type ARecord struct {
	H    RRHeader
	Addr net.IP
}

// NewARecord creates an A record for the given IPv4 address.
func NewARecord(h RRHeader, addr net.IP) *ARecord {
	return &ARecord{H: h, Addr: addr}
}

// Type returns TypeA.
func (r *ARecord) Type() RecordType { return TypeA }

// Header returns the record header.
func (r *ARecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *ARecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the address as 4 bytes.
func (r *ARecord) MarshalRData() ([]byte, error) {
	ip4 := r.Addr.To4()
	if ip4 == nil {
		return nil, fmt.Errorf("%w: A record requires an IPv4 address, got %v", ErrWire, r.Addr)
	}
	return []byte(ip4), nil
}

// ParseARData parses A record data (exactly 4 bytes, RFC 1035
// Section 3.4.1).
func ParseARData(msg []byte, off *int, rdlen int) (*ARecord, error) {
	if rdlen != 4 {
		return nil, fmt.Errorf("%w: A record data must be 4 bytes, got %d", ErrWire, rdlen)
	}
	if *off+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: truncated A record", ErrWire)
	}
	addr := make(net.IP, 4)
	copy(addr, msg[*off:*off+4])
	*off += 4
	return &ARecord{Addr: addr}, nil
}
