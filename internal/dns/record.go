package dns

import (
	"encoding/binary"
	"fmt"

	"github.com/mverkaik/elights/internal/helpers"
)

// RRHeader carries the metadata common to all resource records. Class
// holds the raw wire value, so the mDNS cache-flush bit survives a
// parse/marshal round trip.
type RRHeader struct {
	Name  string
	Class uint16
	TTL   uint32
}

// NewRRHeader builds a record header with a plain class.
func NewRRHeader(name string, class RecordClass, ttl uint32) RRHeader {
	return RRHeader{Name: name, Class: uint16(class), TTL: ttl}
}

// NewFlushRRHeader builds a record header with the mDNS cache-flush bit
// set on the class, as announcements do for SRV, TXT and A records.
func NewFlushRRHeader(name string, class RecordClass, ttl uint32) RRHeader {
	return RRHeader{Name: name, Class: uint16(class) | CacheFlushBit, TTL: ttl}
}

// Record is the interface implemented by all resource record types.
type Record interface {
	Type() RecordType
	Header() RRHeader
	SetHeader(h RRHeader)

	// MarshalRData marshals the type-specific record data.
	MarshalRData() ([]byte, error)
}

// ParseRecord parses one resource record from msg at *off, advancing
// *off past it on success. The type-specific readers are handed exactly
// rdlength bytes and may not read beyond them.
func ParseRecord(msg []byte, off *int) (Record, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	if *off+10 > len(msg) {
		return nil, fmt.Errorf("%w: truncated record header", ErrWire)
	}
	rrType := RecordType(binary.BigEndian.Uint16(msg[*off : *off+2]))
	rrClass := binary.BigEndian.Uint16(msg[*off+2 : *off+4])
	ttl := binary.BigEndian.Uint32(msg[*off+4 : *off+8])
	rdlen := int(binary.BigEndian.Uint16(msg[*off+8 : *off+10]))
	*off += 10

	start := *off
	if start+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: record data overruns message", ErrWire)
	}

	r, err := parseRData(rrType, msg, off, start, rdlen)
	if err != nil {
		return nil, err
	}
	r.SetHeader(RRHeader{Name: name, Class: rrClass, TTL: ttl})
	return r, nil
}

// parseRData dispatches on record type. Discovery only needs A, PTR,
// SRV and TXT; anything else is kept opaquely so a full packet parse
// still succeeds.
func parseRData(rt RecordType, msg []byte, off *int, start, rdlen int) (Record, error) {
	switch rt {
	case TypeA:
		return ParseARData(msg, off, rdlen)
	case TypePTR:
		return ParsePTRRData(msg, off, start, rdlen)
	case TypeSRV:
		return ParseSRVRData(msg, off, start, rdlen)
	case TypeTXT:
		return ParseTXTRData(msg, off, rdlen)
	default:
		return ParseOpaqueRData(msg, off, rdlen, rt)
	}
}

// MarshalRecord converts a record to wire format: name, 2-byte type,
// 2-byte class, 4-byte TTL, 2-byte data length, data. The length field
// is filled in after the record body has been produced.
func MarshalRecord(r Record) ([]byte, error) {
	h := r.Header()
	nameWire, err := EncodeName(h.Name)
	if err != nil {
		return nil, err
	}
	rdata, err := r.MarshalRData()
	if err != nil {
		return nil, err
	}
	if len(rdata) > 65535 {
		return nil, fmt.Errorf("%w: record data too large (%d bytes)", ErrWire, len(rdata))
	}

	out := make([]byte, 0, len(nameWire)+10+len(rdata))
	out = append(out, nameWire...)
	fixed := make([]byte, 10)
	binary.BigEndian.PutUint16(fixed[0:2], uint16(r.Type()))
	binary.BigEndian.PutUint16(fixed[2:4], h.Class)
	binary.BigEndian.PutUint32(fixed[4:8], h.TTL)
	binary.BigEndian.PutUint16(fixed[8:10], helpers.ClampIntToUint16(len(rdata)))
	out = append(out, fixed...)
	out = append(out, rdata...)
	return out, nil
}
