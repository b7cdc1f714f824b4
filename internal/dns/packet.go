package dns

import "github.com/mverkaik/elights/internal/helpers"

// MaxMessageSize caps incoming mDNS datagrams. Multicast DNS messages
// fit in a single 1500-byte Ethernet frame (RFC 6762 Section 17).
const MaxMessageSize = 1500

// Packet is a complete DNS message: header, question section and the
// three resource record sections.
type Packet struct {
	Header      Header
	Questions   []Question
	Answers     []Record
	Authorities []Record
	Additionals []Record
}

// Marshal serializes the packet to wire format. Section counts are
// derived from the slice lengths; Header count fields are ignored.
func (p Packet) Marshal() ([]byte, error) {
	h := Header{
		ID:      p.Header.ID,
		Flags:   p.Header.Flags,
		QDCount: helpers.ClampIntToUint16(len(p.Questions)),
		ANCount: helpers.ClampIntToUint16(len(p.Answers)),
		NSCount: helpers.ClampIntToUint16(len(p.Authorities)),
		ARCount: helpers.ClampIntToUint16(len(p.Additionals)),
	}

	out := make([]byte, 0, 512)
	out = append(out, h.Marshal()...)
	for _, q := range p.Questions {
		qb, err := q.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, qb...)
	}
	for _, section := range [][]Record{p.Answers, p.Authorities, p.Additionals} {
		for _, r := range section {
			rb, err := MarshalRecord(r)
			if err != nil {
				return nil, err
			}
			out = append(out, rb...)
		}
	}
	return out, nil
}

// ParsePacket strictly parses a complete DNS message. Any structural
// violation fails the whole parse; callers wanting partial results from
// damaged packets should walk sections themselves with the section
// parsers (the protocol engine does).
func ParsePacket(msg []byte) (Packet, error) {
	off := 0
	h, err := ParseHeader(msg, &off)
	if err != nil {
		return Packet{}, err
	}

	p := Packet{Header: h}
	for range h.QDCount {
		q, err := ParseQuestion(msg, &off)
		if err != nil {
			return Packet{}, err
		}
		p.Questions = append(p.Questions, q)
	}
	for range h.ANCount {
		r, err := ParseRecord(msg, &off)
		if err != nil {
			return Packet{}, err
		}
		p.Answers = append(p.Answers, r)
	}
	for range h.NSCount {
		r, err := ParseRecord(msg, &off)
		if err != nil {
			return Packet{}, err
		}
		p.Authorities = append(p.Authorities, r)
	}
	for range h.ARCount {
		r, err := ParseRecord(msg, &off)
		if err != nil {
			return Packet{}, err
		}
		p.Additionals = append(p.Additionals, r)
	}
	return p, nil
}
