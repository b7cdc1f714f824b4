package dns

import "fmt"

// TXTRecord holds the metadata strings of a service instance as a
// sequence of length-prefixed character strings (RFC 1035
// Section 3.3.14). An instance with no metadata carries a single empty
// string, since TXT data may not be zero-length.
type TXTRecord struct {
	H       RRHeader
	Strings []string
}

// NewTXTRecord creates a TXT record from key=value pairs.
func NewTXTRecord(h RRHeader, strs []string) *TXTRecord {
	return &TXTRecord{H: h, Strings: strs}
}

// Type returns TypeTXT.
func (r *TXTRecord) Type() RecordType { return TypeTXT }

// Header returns the record header.
func (r *TXTRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *TXTRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the strings with 1-byte length prefixes,
// emitting a single empty string when there are none.
func (r *TXTRecord) MarshalRData() ([]byte, error) {
	if len(r.Strings) == 0 {
		return []byte{0}, nil
	}
	size := 0
	for _, s := range r.Strings {
		if len(s) > 255 {
			return nil, fmt.Errorf("%w: TXT string too long (%d > 255)", ErrWire, len(s))
		}
		size += 1 + len(s)
	}
	out := make([]byte, 0, size)
	for _, s := range r.Strings {
		out = append(out, byte(len(s)))
		out = append(out, s...)
	}
	return out, nil
}

// ParseTXTRData parses TXT record data, consuming exactly rdlen bytes.
func ParseTXTRData(msg []byte, off *int, rdlen int) (*TXTRecord, error) {
	end := *off + rdlen
	if end > len(msg) {
		return nil, fmt.Errorf("%w: truncated TXT record", ErrWire)
	}
	var strs []string
	for *off < end {
		n := int(msg[*off])
		*off++
		if *off+n > end {
			return nil, fmt.Errorf("%w: TXT string overruns record data", ErrWire)
		}
		strs = append(strs, string(msg[*off:*off+n]))
		*off += n
	}
	return &TXTRecord{Strings: strs}, nil
}
