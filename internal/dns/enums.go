package dns

// DNS header flags (RFC 1035 Section 4.1.1).
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA| Z|AD|CD|   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
const (
	QRFlag     uint16 = 0x8000 // 0 = query, 1 = response
	OpcodeMask uint16 = 0x7800
	AAFlag     uint16 = 0x0400 // Authoritative Answer
	TCFlag     uint16 = 0x0200 // Truncated
	RDFlag     uint16 = 0x0100 // Recursion Desired
	RCodeMask  uint16 = 0x000F
)

// MDNSResponseFlags is the flags value for an unsolicited mDNS
// answer: QR set, AA set, everything else zero (RFC 6762 Section 18).
const MDNSResponseFlags = QRFlag | AAFlag

// RecordType represents DNS resource record types (RFC 1035, RFC 2782).
type RecordType uint16

const (
	TypeA   RecordType = 1  // IPv4 address
	TypePTR RecordType = 12 // Service enumeration pointer
	TypeTXT RecordType = 16 // Text strings
	TypeSRV RecordType = 33 // Service location (RFC 2782)
	TypeANY RecordType = 255
)

// RecordClass represents DNS resource record classes.
type RecordClass uint16

const (
	ClassIN  RecordClass = 1
	ClassANY RecordClass = 255
)

// CacheFlushBit is the high bit of the class field in mDNS responses
// (RFC 6762 Section 10.2). Receivers should replace, not merge, their
// cached copy of the record. Ignored when comparing classes on parse.
const CacheFlushBit uint16 = 0x8000

// ClassEquals reports whether a wire class matches want, tolerating the
// mDNS cache-flush bit on the wire value.
func ClassEquals(wire uint16, want RecordClass) bool {
	return wire&^CacheFlushBit == uint16(want)
}
