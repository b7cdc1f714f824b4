package mdns

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"github.com/mverkaik/elights/internal/dns"
)

// Sender sends one datagram to the multicast group. *Conn implements
// it; tests substitute a capture.
type Sender interface {
	SendMulticast(b []byte) (int, error)
}

// AddressSink receives the addresses of discovered peers. The engine
// is the only writer; the discovery registry implements it behind a
// lock.
type AddressSink interface {
	AddDiscovered(addr string) bool
}

// Engine is the protocol engine multiplexing two roles over the shared
// socket: answering A-record queries for the local hostname, and
// harvesting peer addresses from responses that mention the service
// being discovered. It must be the sole reader of Conn.
type Engine struct {
	Logger   *slog.Logger
	Conn     *Conn
	Out      Sender // defaults to Conn
	Service  string // service type being discovered, e.g. "_elg._tcp.local"
	Hostname string // local hostname to answer for, e.g. "elights.local"
	HostIP   string // local IPv4 in dotted-quad form
	Sink     AddressSink

	buf [dns.MaxMessageSize]byte
}

// Run invokes ProcessOnce on a fixed cadence until ctx is cancelled.
// Receive errors are logged and do not stop the loop; only socket
// setup failures (handled before Run) are fatal.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.ProcessOnce(); err != nil {
				if e.Logger != nil {
					e.Logger.Warn("mdns receive failed", "err", err)
				}
			}
		}
	}
}

// ProcessOnce receives at most one packet and handles it. A receive
// timeout is not an error; there was simply nothing to do this cycle.
func (e *Engine) ProcessOnce() error {
	msg, remote, err := e.Conn.Receive(e.buf[:])
	if err != nil {
		return err
	}
	if msg == nil {
		return nil
	}
	e.HandlePacket(msg, remote.IP.String())
	return nil
}

// HandlePacket classifies one raw packet as query or response and
// dispatches it. Malformed packets truncate processing without
// propagating an error: whatever was collected before the damage is
// kept, and engine state is never corrupted.
func (e *Engine) HandlePacket(msg []byte, from string) {
	off := 0
	h, err := dns.ParseHeader(msg, &off)
	if err != nil {
		return // shorter than a DNS header, ignore
	}

	if h.IsQuery() {
		if h.QDCount > 0 {
			e.handleQuery(msg, off, h, from)
		}
		return
	}
	e.handleResponse(msg, off, h)
}

// handleQuery answers the first question asking for an A (or ANY)
// record of the local hostname. One answer per packet is sufficient;
// remaining questions are not inspected once a match is found.
func (e *Engine) handleQuery(msg []byte, off int, h dns.Header, from string) {
	localName := dns.NormalizeName(e.Hostname)

	for range h.QDCount {
		q, err := dns.ParseQuestion(msg, &off)
		if err != nil {
			return
		}
		if !wantsHostAddress(q) || dns.NormalizeName(q.Name) != localName {
			continue
		}

		if e.Logger != nil {
			e.Logger.Debug("answering hostname query", "name", q.Name, "from", from)
		}
		if err := e.sendHostResponse(); err != nil && e.Logger != nil {
			e.Logger.Warn("failed to answer hostname query", "err", err)
		}
		return
	}
}

// wantsHostAddress reports whether a question asks for an IPv4 address
// in a class we serve.
func wantsHostAddress(q dns.Question) bool {
	typeOK := q.Type == uint16(dns.TypeA) || q.Type == uint16(dns.TypeANY)
	classOK := q.Class == uint16(dns.ClassIN) || q.Class == uint16(dns.ClassANY)
	return typeOK && classOK
}

func (e *Engine) sendHostResponse() error {
	resp, err := BuildHostResponse(e.Hostname, e.HostIP)
	if err != nil {
		return err
	}
	if _, err := e.sender().SendMulticast(resp); err != nil {
		return err
	}
	return nil
}

// handleResponse scans the record sections of a response for A records
// belonging to the discovered service.
//
// Matching is packet-scoped on purpose: peers announce PTR, SRV, TXT
// and A together in one packet where only the PTR and SRV owner names
// carry the service type, and the A record is owned by the bare
// hostname. Once any record in the packet names the service, every
// well-formed A record in it is taken as a peer address. Tightening
// this to strict per-record association would stop discovery of
// exactly those combined announcements.
func (e *Engine) handleResponse(msg []byte, off int, h dns.Header) {
	// Walk past the question section; each question is a name plus
	// 4 bytes of type and class.
	for range h.QDCount {
		if err := dns.SkipQuestion(msg, &off); err != nil {
			return
		}
	}

	serviceName := dns.NormalizeName(e.Service)
	serviceSeen := false

	for range h.RecordCount() {
		name, err := dns.DecodeName(msg, &off)
		if err != nil {
			return
		}
		if off+10 > len(msg) {
			return
		}
		rrType := dns.RecordType(binary.BigEndian.Uint16(msg[off : off+2]))
		rrClass := binary.BigEndian.Uint16(msg[off+2 : off+4])
		rdlen := int(binary.BigEndian.Uint16(msg[off+8 : off+10]))
		off += 10
		if off+rdlen > len(msg) {
			return
		}

		if dns.NormalizeName(name) == serviceName {
			serviceSeen = true
		}
		if serviceSeen && rrType == dns.TypeA && dns.ClassEquals(rrClass, dns.ClassIN) && rdlen == 4 {
			e.recordPeer(msg[off : off+4])
		}
		off += rdlen
	}
}

// recordPeer formats a 4-byte A record payload as a dotted quad and
// hands it to the sink.
func (e *Engine) recordPeer(addr []byte) {
	ip := fmt.Sprintf("%d.%d.%d.%d", addr[0], addr[1], addr[2], addr[3])
	if e.Sink != nil && e.Sink.AddDiscovered(ip) && e.Logger != nil {
		e.Logger.Info("discovered peer", "addr", ip, "service", e.Service)
	}
}

func (e *Engine) sender() Sender {
	if e.Out != nil {
		return e.Out
	}
	return e.Conn
}
