package dns

import (
	"encoding/binary"
	"fmt"
)

// SRVRecord locates a service instance: priority, weight, port and the
// target hostname (RFC 2782). mDNS announcements use priority 0 and
// weight 0.
type SRVRecord struct {
	H        RRHeader
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// NewSRVRecord creates an SRV record for target:port.
func NewSRVRecord(h RRHeader, port uint16, target string) *SRVRecord {
	return &SRVRecord{H: h, Port: port, Target: target}
}

// Type returns TypeSRV.
func (r *SRVRecord) Type() RecordType { return TypeSRV }

// Header returns the record header.
func (r *SRVRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *SRVRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals priority, weight, port and the target name.
// The target is written in label form without compression, as required
// for SRV data by RFC 2782.
func (r *SRVRecord) MarshalRData() ([]byte, error) {
	target, err := EncodeName(r.Target)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 6, 6+len(target))
	binary.BigEndian.PutUint16(out[0:2], r.Priority)
	binary.BigEndian.PutUint16(out[2:4], r.Weight)
	binary.BigEndian.PutUint16(out[4:6], r.Port)
	return append(out, target...), nil
}

// ParseSRVRData parses SRV record data.
func ParseSRVRData(msg []byte, off *int, start, rdlen int) (*SRVRecord, error) {
	if rdlen < 6 || *off+6 > len(msg) {
		return nil, fmt.Errorf("%w: truncated SRV record", ErrWire)
	}
	r := &SRVRecord{
		Priority: binary.BigEndian.Uint16(msg[*off : *off+2]),
		Weight:   binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
		Port:     binary.BigEndian.Uint16(msg[*off+4 : *off+6]),
	}
	*off += 6
	target, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	r.Target = target
	if *off-start != rdlen {
		return nil, fmt.Errorf("%w: SRV data length mismatch", ErrWire)
	}
	return r, nil
}
