package dns

// OpaqueRecord carries a record of a type this module does not
// interpret (AAAA, NSEC and friends show up routinely in mDNS
// traffic). The data is kept raw so a packet parse never fails on an
// unfamiliar type.
type OpaqueRecord struct {
	H    RRHeader
	T    RecordType
	Data []byte
}

// Type returns the record type.
func (r *OpaqueRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *OpaqueRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *OpaqueRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData returns the raw data unchanged.
func (r *OpaqueRecord) MarshalRData() ([]byte, error) {
	return r.Data, nil
}

// ParseOpaqueRData copies rdlen raw bytes. Bounds were checked by
// ParseRecord before dispatch.
func ParseOpaqueRData(msg []byte, off *int, rdlen int, rt RecordType) (*OpaqueRecord, error) {
	b := make([]byte, rdlen)
	copy(b, msg[*off:*off+rdlen])
	*off += rdlen
	return &OpaqueRecord{T: rt, Data: b}, nil
}
