package dns

import "fmt"

// PTRRecord maps a service type to a service instance
// (e.g. "_elg._tcp.local" → "Key Light._elg._tcp.local").
type PTRRecord struct {
	H      RRHeader
	Target string
}

// NewPTRRecord creates a PTR record pointing at target.
func NewPTRRecord(h RRHeader, target string) *PTRRecord {
	return &PTRRecord{H: h, Target: target}
}

// Type returns TypePTR.
func (r *PTRRecord) Type() RecordType { return TypePTR }

// Header returns the record header.
func (r *PTRRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *PTRRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the target name in label form.
func (r *PTRRecord) MarshalRData() ([]byte, error) {
	return EncodeName(r.Target)
}

// ParsePTRRData parses PTR record data. The target name may use
// compression pointing back into the surrounding message.
func ParsePTRRData(msg []byte, off *int, start, rdlen int) (*PTRRecord, error) {
	target, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	if *off-start != rdlen {
		return nil, fmt.Errorf("%w: PTR data length mismatch", ErrWire)
	}
	return &PTRRecord{Target: target}, nil
}
