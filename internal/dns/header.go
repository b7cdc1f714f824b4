package dns

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of a DNS message header in bytes.
const HeaderSize = 12

// Header is a DNS message header (RFC 1035 Section 4.1.1). mDNS sets
// ID to zero on multicast and only the QR and AA bits of Flags matter
// to this module.
type Header struct {
	ID      uint16
	Flags   uint16
	QDCount uint16 // questions
	ANCount uint16 // answers
	NSCount uint16 // authorities
	ARCount uint16 // additionals
}

// Marshal serializes the header to wire format (big-endian, 12 bytes).
func (h Header) Marshal() []byte {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(b[0:2], h.ID)
	binary.BigEndian.PutUint16(b[2:4], h.Flags)
	binary.BigEndian.PutUint16(b[4:6], h.QDCount)
	binary.BigEndian.PutUint16(b[6:8], h.ANCount)
	binary.BigEndian.PutUint16(b[8:10], h.NSCount)
	binary.BigEndian.PutUint16(b[10:12], h.ARCount)
	return b
}

// ParseHeader parses a header from msg at *off, advancing *off by
// HeaderSize on success.
func ParseHeader(msg []byte, off *int) (Header, error) {
	if *off+HeaderSize > len(msg) {
		return Header{}, fmt.Errorf("%w: message shorter than header", ErrWire)
	}
	h := Header{
		ID:      binary.BigEndian.Uint16(msg[*off : *off+2]),
		Flags:   binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
		QDCount: binary.BigEndian.Uint16(msg[*off+4 : *off+6]),
		ANCount: binary.BigEndian.Uint16(msg[*off+6 : *off+8]),
		NSCount: binary.BigEndian.Uint16(msg[*off+8 : *off+10]),
		ARCount: binary.BigEndian.Uint16(msg[*off+10 : *off+12]),
	}
	*off += HeaderSize
	return h, nil
}

// IsQuery reports whether the QR bit is clear.
func (h Header) IsQuery() bool {
	return h.Flags&QRFlag == 0
}

// IsResponse reports whether the QR bit is set.
func (h Header) IsResponse() bool {
	return h.Flags&QRFlag != 0
}

// Authoritative reports whether the AA bit is set.
func (h Header) Authoritative() bool {
	return h.Flags&AAFlag != 0
}

// RecordCount returns the combined answer, authority and additional
// record count.
func (h Header) RecordCount() int {
	return int(h.ANCount) + int(h.NSCount) + int(h.ARCount)
}
