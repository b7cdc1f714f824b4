// Package mdns implements the multicast DNS engine: packet builders,
// the shared multicast socket, the protocol engine that multiplexes
// discovery and authoritative answers over it, and the periodic
// announcer.
package mdns

import (
	"fmt"
	"net"

	"github.com/mverkaik/elights/internal/dns"
)

// Record TTLs used in announcements (seconds). Long-lived records
// (service enumeration, metadata) get 75 minutes, host details 2
// minutes, following common mDNS responder practice.
const (
	ttlLong = 4500
	ttlHost = 120
)

// BuildPTRQuery builds a standard PTR query for a service type, e.g.
// "_elg._tcp.local". mDNS queries carry ID 0 and no flags.
func BuildPTRQuery(service string) ([]byte, error) {
	if service == "" {
		return nil, fmt.Errorf("build ptr query: empty service name")
	}
	p := dns.Packet{
		Questions: []dns.Question{{
			Name:  service,
			Type:  uint16(dns.TypePTR),
			Class: uint16(dns.ClassIN),
		}},
	}
	return p.Marshal()
}

// BuildAnnouncement builds an unsolicited service announcement:
// three answers (PTR, SRV, TXT) plus the host A record as an
// additional. The PTR record keeps a plain IN class; SRV, TXT and A
// set the cache-flush bit since this host owns those names.
func BuildAnnouncement(service, instance, hostname, ipv4 string, port uint16, txt []string) ([]byte, error) {
	if service == "" || instance == "" || hostname == "" {
		return nil, fmt.Errorf("build announcement: service, instance and hostname must be non-empty")
	}
	addr := net.ParseIP(ipv4)
	if addr == nil || addr.To4() == nil {
		return nil, fmt.Errorf("build announcement: %q is not an IPv4 address", ipv4)
	}

	fullInstance := instance + "." + service
	p := dns.Packet{
		Header: dns.Header{Flags: dns.MDNSResponseFlags},
		Answers: []dns.Record{
			dns.NewPTRRecord(dns.NewRRHeader(service, dns.ClassIN, ttlLong), fullInstance),
			dns.NewSRVRecord(dns.NewFlushRRHeader(fullInstance, dns.ClassIN, ttlHost), port, hostname),
			dns.NewTXTRecord(dns.NewFlushRRHeader(fullInstance, dns.ClassIN, ttlLong), txt),
		},
		Additionals: []dns.Record{
			dns.NewARecord(dns.NewFlushRRHeader(hostname, dns.ClassIN, ttlHost), addr),
		},
	}
	return p.Marshal()
}

// BuildHostResponse builds a standalone authoritative A-record answer
// for the local hostname, used both as a periodic announcement and as
// the response to incoming A queries.
func BuildHostResponse(hostname, ipv4 string) ([]byte, error) {
	if hostname == "" {
		return nil, fmt.Errorf("build host response: empty hostname")
	}
	addr := net.ParseIP(ipv4)
	if addr == nil || addr.To4() == nil {
		return nil, fmt.Errorf("build host response: %q is not an IPv4 address", ipv4)
	}

	p := dns.Packet{
		Header: dns.Header{Flags: dns.MDNSResponseFlags},
		Answers: []dns.Record{
			dns.NewARecord(dns.NewFlushRRHeader(hostname, dns.ClassIN, ttlHost), addr),
		},
	}
	return p.Marshal()
}
